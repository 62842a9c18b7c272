package errors

// User-facing messages. The registration and duplicate wording is part of
// the client contract and must not change.
const (
	MsgDuplicateUser        = "User already Registered"
	MsgRegistrationSuccess  = "Registration successful"
	MsgInvalidCredentials   = "Invalid email or password."
	MsgUnauthorized         = "You must be logged in to do that."
	MsgForbidden            = "You can only manage your own listings."
	MsgHouseNotFound        = "House not found."
	MsgBookingLimitExceeded = "You have reached the maximum of 2 active bookings."
	MsgInvalidParameters    = "The provided parameters are invalid. Please check your input and try again."
	MsgInternalError        = "Something went wrong on our end. Please try again later."
)
