package directory

import "github.com/google/uuid"

type Doctor struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Qualification  string    `json:"qualification,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Hospital       string    `json:"hospital,omitempty"`
	AvailableDays  string    `json:"available_days,omitempty"`
	Fee            int       `json:"fee,omitempty"`
	Address        string    `json:"address,omitempty"`
	Latitude       string    `json:"latitude,omitempty"`
	Longitude      string    `json:"longitude,omitempty"`
}

type Hospital struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Type               string    `json:"type,omitempty"` // government, private, clinic
	Address            string    `json:"address"`
	Phone              string    `json:"phone,omitempty"`
	EmergencyAvailable bool      `json:"emergency_available"`
	Latitude           string    `json:"latitude,omitempty"`
	Longitude          string    `json:"longitude,omitempty"`
	Facilities         string    `json:"facilities,omitempty"`
}

type NGO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Services     string    `json:"services,omitempty"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Latitude     string    `json:"latitude,omitempty"`
	Longitude    string    `json:"longitude,omitempty"`
	WorkingAreas string    `json:"working_areas,omitempty"`
}
