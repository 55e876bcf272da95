package api

// Code is a response outcome code. The set is closed: every caller-facing
// response carries exactly one of these codes together with its fixed
// message. The numbering matches the upstream wire contract; 008 (transfer)
// is unassigned because transfers are not part of this service.
type Code string

const (
	CodeAccountExists         Code = "001"
	CodeAccountCreated        Code = "002"
	CodeAccountNotExist       Code = "003"
	CodeAccountFound          Code = "004"
	CodeAccountCredited       Code = "005"
	CodeInsufficientBalance   Code = "006"
	CodeAccountDebited        Code = "007"
	CodeAccountCreationFailed Code = "009"
	CodeBalanceEnquiryOK      Code = "010"
	CodeAccountNotFound       Code = "011"
	CodeBalanceEnquiryFailed  Code = "012"
)

// Message returns the fixed user-facing message for the code. Generic
// failure messages deliberately carry no internal detail.
func (c Code) Message() string {
	switch c {
	case CodeAccountExists:
		return "This user already has an account created!"
	case CodeAccountCreated:
		return "Account created successfully"
	case CodeAccountNotExist:
		return "This user does not have an account with us"
	case CodeAccountFound:
		return "User Account Found"
	case CodeAccountCredited:
		return "Account Credited Successfully"
	case CodeInsufficientBalance:
		return "Insufficient Balance"
	case CodeAccountDebited:
		return "Account Debited Successfully"
	case CodeAccountCreationFailed:
		return "An unexpected error occurred while creating account"
	case CodeBalanceEnquiryOK:
		return "Balance Enquiry Successful"
	case CodeAccountNotFound:
		return "Account not found"
	case CodeBalanceEnquiryFailed:
		return "An unexpected error occurred while performing balance enquiry"
	}
	return "Unknown response code"
}

// NameEnquiryFailureMessage is returned by the name enquiry, which replies
// with a bare string rather than an envelope.
const NameEnquiryFailureMessage = "An unexpected error occurred while performing name enquiry"
