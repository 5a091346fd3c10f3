package schedule

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyOnce    Frequency = "once"
)

func (f Frequency) String() string {
	return string(f)
}

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyOnce:
		return true
	default:
		return false
	}
}

func NewFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !f.IsValid() {
		return "", ErrInvalidFrequency
	}
	return f, nil
}

type Status string

const (
	StatusActive   Status = "active"
	StatusCanceled Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCanceled:
		return true
	default:
		return false
	}
}

// InstanceStatus tracks an order instance through payment and fulfillment.
// Instances are never auto-confirmed; downstream payment flows move them
// past AwaitingPayment.
type InstanceStatus string

const (
	InstanceAwaitingPayment InstanceStatus = "awaiting_payment"
	InstancePaid            InstanceStatus = "paid"
	InstanceDelivered       InstanceStatus = "delivered"
	InstanceCanceled        InstanceStatus = "canceled"
)

func (s InstanceStatus) String() string {
	return string(s)
}

func (s InstanceStatus) IsValid() bool {
	switch s {
	case InstanceAwaitingPayment, InstancePaid, InstanceDelivered, InstanceCanceled:
		return true
	default:
		return false
	}
}
