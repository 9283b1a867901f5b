package msgs

const (
	MsgOperationFailed         = "operation failed"
	MsgOperationSuccessful     = "operation successful"
	MsgUserCreatedSuccessfully = "user created successfully"
	MsgYouMustLoginFirst       = "you must login first"
	MsgStaffOnly               = "this operation is for office staff only"
	MsgCaseCreatedSuccessfully = "tax case created successfully"
	MsgCaseStatusUpdated       = "tax case status updated"
	MsgDocumentUploaded        = "document uploaded successfully"
	MsgAppointmentCreated      = "appointment created successfully"
	MsgMessageSentSuccessfully = "message sent successfully"
)
