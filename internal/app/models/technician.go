package models

type Technician struct {
	ID        string   `bson:"_id,omitempty"`
	Name      string   `bson:"name"`
	Email     string   `bson:"email"`
	Skills    []string `bson:"skills,omitempty"`
	Active    bool     `bson:"active"`
	TimeModel `bson:",inline"`
}
