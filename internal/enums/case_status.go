package enums

type CaseStatus string

const (
	CASE_STATUS_PENDING            CaseStatus = "pending"
	CASE_STATUS_IN_PROGRESS        CaseStatus = "in_progress"
	CASE_STATUS_AWAITING_DOCUMENTS CaseStatus = "awaiting_documents"
	CASE_STATUS_UNDER_REVIEW       CaseStatus = "under_review"
	CASE_STATUS_APPROVED           CaseStatus = "approved"
	CASE_STATUS_FILED              CaseStatus = "filed"
	CASE_STATUS_REJECTED           CaseStatus = "rejected"
)

func (cs CaseStatus) IsValid() bool {
	switch cs {
	case CASE_STATUS_PENDING, CASE_STATUS_IN_PROGRESS, CASE_STATUS_AWAITING_DOCUMENTS,
		CASE_STATUS_UNDER_REVIEW, CASE_STATUS_APPROVED, CASE_STATUS_FILED, CASE_STATUS_REJECTED:
		return true
	}
	return false
}

type AppointmentStatus string

const (
	APPOINTMENT_STATUS_SCHEDULED AppointmentStatus = "scheduled"
	APPOINTMENT_STATUS_COMPLETED AppointmentStatus = "completed"
	APPOINTMENT_STATUS_CANCELLED AppointmentStatus = "cancelled"
)

const FILE_BUCKET_DOCUMENTS = "tax-documents"
