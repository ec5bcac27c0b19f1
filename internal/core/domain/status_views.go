package domain

// StatusRecord - то, что хранится в документе заявки.
// Тексты для сторон всегда выводятся из глобального статуса,
// поэтому разъехаться с ним не могут.
type StatusRecord struct {
	Global         AppointmentStatus `json:"global" bson:"global"`
	UserView       string            `json:"userView" bson:"userView"`
	TechnicianView string            `json:"technicianView" bson:"technicianView"`
}

// NewStatusRecord - единственный способ собрать StatusRecord.
// arrived учитывается только в Accepted (под-шаг для home-service).
func NewStatusRecord(status AppointmentStatus, arrived bool) StatusRecord {
	return StatusRecord{
		Global:         status,
		UserView:       CustomerMessageFor(status, arrived),
		TechnicianView: TechnicianMessageFor(status, arrived),
	}
}

func CustomerMessageFor(status AppointmentStatus, arrived bool) string {
	switch status {
	case AppointmentStatusScheduled:
		return "Waiting for the technician to confirm your appointment"
	case AppointmentStatusAccepted:
		if arrived {
			return "The technician has arrived"
		}
		return "The technician accepted your appointment"
	case AppointmentStatusRejected:
		return "The technician declined your appointment"
	case AppointmentStatusCancelled:
		return "You cancelled this appointment"
	case AppointmentStatusRepairing:
		return "Your appliance is being repaired"
	case AppointmentStatusTesting:
		return "The technician is testing your appliance"
	case AppointmentStatusCompleted:
		return "Repair completed"
	}
	return string(status)
}

func TechnicianMessageFor(status AppointmentStatus, arrived bool) string {
	switch status {
	case AppointmentStatusScheduled:
		return "New appointment request"
	case AppointmentStatusAccepted:
		if arrived {
			return "You arrived at the customer's location"
		}
		return "You accepted this appointment"
	case AppointmentStatusRejected:
		return "You declined this appointment"
	case AppointmentStatusCancelled:
		return "The customer cancelled this appointment"
	case AppointmentStatusRepairing:
		return "Repair in progress"
	case AppointmentStatusTesting:
		return "Testing in progress"
	case AppointmentStatusCompleted:
		return "Repair completed"
	}
	return string(status)
}
