package followup

// Follow-up status values.
const (
	StatusPending = "Pending"
	StatusDone    = "Done"
)

// DateLayout is the storage format for follow-up dates.
const DateLayout = "2006-01-02"

type FollowUp struct {
	ID           int64  `db:"id" json:"-"`
	FuID         string `db:"fu_id" json:"fuId"`
	Date         string `db:"fu_date" json:"date"`
	CustomerName string `db:"customer_name" json:"customerName"`
	Insta        string `db:"insta" json:"insta"`
	Topic        string `db:"topic" json:"topic"`
	// NextDate is nullable: nil means no next touchpoint is planned.
	NextDate *string `db:"next_date" json:"nextDate"`
	Status   string  `db:"status" json:"status"`
	Remarks  string  `db:"remarks" json:"remarks"`
}
