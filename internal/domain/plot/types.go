package plot

type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
	StatusSold      Status = "sold"
	StatusReserved  Status = "reserved"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusSold, StatusReserved:
		return true
	}
	return false
}

// Bucket names the project counter a plot in this status is counted under.
// Booked plots are pending reservations and share the reserved bucket.
type Bucket int

const (
	BucketNone Bucket = iota
	BucketAvailable
	BucketSold
	BucketReserved
)

func (s Status) Bucket() Bucket {
	switch s {
	case StatusAvailable:
		return BucketAvailable
	case StatusSold:
		return BucketSold
	case StatusBooked, StatusReserved:
		return BucketReserved
	}
	return BucketNone
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
