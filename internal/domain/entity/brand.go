package entity

import "time"

// Brand representa una marca de autos. El nombre es único sin distinguir
// mayúsculas (índice único sobre lower(name) en la DB).
type Brand struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
