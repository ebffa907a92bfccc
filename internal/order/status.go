package order

// Status is the order lifecycle state. The sequence is a strict total order:
// transitions only ever move forward, one step at a time.
type Status string

const (
	StatusConfirmed      Status = "confirmed"
	StatusInKitchen      Status = "kitchen"
	StatusOutForDelivery Status = "delivery"
	StatusDelivered      Status = "delivered"
)

var statusSequence = []Status{
	StatusConfirmed,
	StatusInKitchen,
	StatusOutForDelivery,
	StatusDelivered,
}

var statusLabels = map[Status]string{
	StatusConfirmed:      "Order Confirmed",
	StatusInKitchen:      "In the Kitchen",
	StatusOutForDelivery: "Out for Delivery",
	StatusDelivered:      "Delivered",
}

func (s Status) Label() string {
	return statusLabels[s]
}

// Terminal reports whether no further transition exists.
func (s Status) Terminal() bool {
	return s == StatusDelivered
}

// Next returns the following status in the sequence, or false at the terminal
// state.
func (s Status) Next() (Status, bool) {
	for i, st := range statusSequence {
		if st == s && i < len(statusSequence)-1 {
			return statusSequence[i+1], true
		}
	}
	return s, false
}

func (s Status) index() int {
	for i, st := range statusSequence {
		if st == s {
			return i
		}
	}
	return -1
}
