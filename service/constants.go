package service

const (
	MonthsPerYear = 12

	scheduleCacheKeyFmt = "schedule:%s:%s:%d"
)

// Client-facing messages. Tests and callers assert on these exact strings.
const (
	MsgUsernameExists  = "Username already exists"
	MsgInvalidAmount   = "Loan amount must be greater than zero."
	MsgInvalidAPR      = "APR must be greater than zero."
	MsgInvalidTerm     = "Loan term must be greater than zero."
	MsgInvalidStatus   = "Loan status must be either 'active' or 'inactive'."
	MsgOwnerNotFound   = "Owner does not exist."
	MsgPaymentOverflow = "Loan terms do not produce a finite monthly payment."
	MsgInvalidMonthFmt = "Month must be between 1 and %d."
	MsgUserNotFound    = "User not found"
	MsgLoanNotFound    = "Loan not found"
	MsgNoAccess        = "User does not have access to this loan"
	MsgNotOwner        = "Only the loan owner can share this loan"
	MsgLoanSharedFmt   = "Loan %d shared with user %d"
)
