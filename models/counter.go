package models

// FileNumberCounter holds the last allocated file-number sequence for one
// (settlement sort order, year) pair. Rows are advanced with a single
// upsert-and-return statement inside the creating transaction, so the read
// and the increment cannot race; the unique index on appeals.file_number
// stays as the final guard.
type FileNumberCounter struct {
	SettlementOrder int `gorm:"primaryKey;autoIncrement:false" json:"settlement_order"`
	Year            int `gorm:"primaryKey;autoIncrement:false" json:"year"`
	LastSeq         int `gorm:"not null" json:"last_seq"`
}

// TableName specifies the table name for FileNumberCounter model
func (FileNumberCounter) TableName() string {
	return "file_number_counters"
}

// OrderNumberCounter is the single-row counter behind the global order
// number sequence. Order numbers are never scoped per appeal.
type OrderNumberCounter struct {
	ID         int `gorm:"primaryKey;autoIncrement:false" json:"id"`
	LastNumber int `gorm:"not null" json:"last_number"`
}

// TableName specifies the table name for OrderNumberCounter model
func (OrderNumberCounter) TableName() string {
	return "order_number_counter"
}
