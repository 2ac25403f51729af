package models

type Client struct {
	Model
	Name         string        `json:"name" gorm:"type:text;not null;"`
	ContactEmail string        `json:"contactEmail" gorm:"type:text"`
	Address      string        `json:"address" gorm:"type:text"`
	Applications []Application `json:"applications,omitempty" gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (c Client) TableName() string {
	return "clients"
}
