package entity

// State is a federative unit identified by its two-letter code.
type State struct {
	ID   int32  `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:2;not null" json:"code"`
	Name string `gorm:"not null" json:"name"`
}

func (State) TableName() string {
	return "states"
}

type Municipality struct {
	ID      int32  `gorm:"primaryKey" json:"id"`
	StateID int32  `gorm:"not null" json:"state_id"`
	Name    string `gorm:"not null" json:"name"`

	// Joined display data
	StateName *string `gorm:"column:state_name;-:migration" json:"state_name"`
}

func (Municipality) TableName() string {
	return "municipalities"
}
