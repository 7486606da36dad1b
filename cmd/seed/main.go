// Seed loads the Chittagong Hill Tracts provider directory into the
// database. It clears the existing directory tables first, so it is safe to
// re-run.
package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"wecare/internal/config"
	"wecare/internal/directory"
)

var doctors = []directory.Doctor{
	{Name: "Dr. Fatima Rahman", Specialization: "General Medicine", Qualification: "MBBS, MD", Phone: "+880-1711-123456", Hospital: "Rangamati General Hospital", AvailableDays: "Mon, Wed, Fri", Fee: 500, Address: "Rangamati, Chittagong Hill Tracts", Latitude: "22.6533", Longitude: "92.1985"},
	{Name: "Dr. Kamal Hossain", Specialization: "Pediatrics", Qualification: "MBBS, DCH", Phone: "+880-1712-234567", Hospital: "Bandarban District Hospital", AvailableDays: "Tue, Thu, Sat", Fee: 600, Address: "Bandarban, Chittagong Hill Tracts", Latitude: "22.1953", Longitude: "92.2183"},
	{Name: "Dr. Ayesha Begum", Specialization: "Gynecology", Qualification: "MBBS, FCPS", Phone: "+880-1713-345678", Hospital: "Khagrachari Sadar Hospital", AvailableDays: "Mon, Tue, Thu", Fee: 700, Address: "Khagrachari, Chittagong Hill Tracts", Latitude: "23.1322", Longitude: "91.9490"},
	{Name: "Dr. Ripon Das", Specialization: "Dermatology", Qualification: "MBBS, DDV", Phone: "+880-1714-456789", Hospital: "Cox's Bazar Medical College", AvailableDays: "Wed, Fri, Sat", Fee: 800, Address: "Cox's Bazar", Latitude: "21.4272", Longitude: "92.0058"},
	{Name: "Dr. Nusrat Jahan", Specialization: "Cardiology", Qualification: "MBBS, MD (Cardiology)", Phone: "+880-1715-567890", Hospital: "Chittagong Medical College", AvailableDays: "Mon, Wed, Fri", Fee: 1000, Address: "Chittagong City", Latitude: "22.3569", Longitude: "91.7832"},
	{Name: "Dr. Rafiqul Islam", Specialization: "Orthopedics", Qualification: "MBBS, MS (Ortho)", Phone: "+880-1716-678901", Hospital: "Rangamati General Hospital", AvailableDays: "Tue, Thu, Sat", Fee: 900, Address: "Rangamati, Chittagong Hill Tracts", Latitude: "22.6533", Longitude: "92.1985"},
	{Name: "Dr. Sharmila Chakma", Specialization: "ENT", Qualification: "MBBS, DLO", Phone: "+880-1717-789012", Hospital: "Bandarban District Hospital", AvailableDays: "Mon, Wed, Fri", Fee: 650, Address: "Bandarban, Chittagong Hill Tracts", Latitude: "22.1953", Longitude: "92.2183"},
}

var hospitals = []directory.Hospital{
	{Name: "Rangamati General Hospital", Type: "Government", Address: "Hospital Road, Rangamati, Chittagong Hill Tracts", Phone: "+880-351-62324", EmergencyAvailable: true, Latitude: "22.6533", Longitude: "92.1985", Facilities: "Emergency, ICU, Surgery, Lab, X-Ray"},
	{Name: "Bandarban District Hospital", Type: "Government", Address: "Bandarban Sadar, Bandarban, Chittagong Hill Tracts", Phone: "+880-361-62233", EmergencyAvailable: true, Latitude: "22.1953", Longitude: "92.2183", Facilities: "Emergency, General Ward, Lab, Pharmacy"},
	{Name: "Khagrachari Sadar Hospital", Type: "Government", Address: "Khagrachari Sadar, Khagrachari, Chittagong Hill Tracts", Phone: "+880-371-61325", EmergencyAvailable: true, Latitude: "23.1322", Longitude: "91.9490", Facilities: "Emergency, Maternity Ward, Surgery, Lab"},
	{Name: "Hill View Clinic", Type: "Private", Address: "Main Road, Rangamati", Phone: "+880-1811-234567", EmergencyAvailable: false, Latitude: "22.6550", Longitude: "92.2000", Facilities: "OPD, Diagnostic Center, Pharmacy"},
	{Name: "Green Valley Medical Center", Type: "Private", Address: "Bandarban Town, Bandarban", Phone: "+880-1812-345678", EmergencyAvailable: true, Latitude: "22.1970", Longitude: "92.2200", Facilities: "24/7 Emergency, ICU, Surgery, Lab"},
}

var ngos = []directory.NGO{
	{Name: "BRAC Health Programme", Services: "Primary healthcare, maternal health, TB/malaria treatment, health education", Address: "Multiple locations across Hill Tracts", Phone: "+880-2-9881265", Email: "health@brac.net", Latitude: "22.6533", Longitude: "92.1985", WorkingAreas: "Rangamati, Bandarban, Khagrachari"},
	{Name: "Friendship NGO", Services: "Mobile health clinics, telemedicine, emergency medical transport", Address: "Bandarban and remote areas", Phone: "+880-1713-098765", Email: "info@friendship.ngo", Latitude: "22.1953", Longitude: "92.2183", WorkingAreas: "Bandarban, Remote villages"},
	{Name: "Hill Women's Federation", Services: "Maternal health, family planning, women's health awareness", Address: "Khagrachari Town", Phone: "+880-1714-567890", Email: "hillwomen@gmail.com", Latitude: "23.1322", Longitude: "91.9490", WorkingAreas: "Khagrachari, Rangamati"},
	{Name: "Red Crescent Society - CHT Branch", Services: "First aid training, emergency medical support, ambulance service", Address: "Rangamati, Chittagong Hill Tracts", Phone: "+880-351-62456", Email: "chtbranch@redcrescent.org.bd", Latitude: "22.6533", Longitude: "92.1985", WorkingAreas: "All three hill districts"},
	{Name: "Save the Children - Bangladesh", Services: "Child health, nutrition programs, vaccination campaigns", Address: "Bandarban District", Phone: "+880-1715-678901", Email: "bangladesh@savethechildren.org", Latitude: "22.1953", Longitude: "92.2183", WorkingAreas: "Bandarban, remote villages"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to start transaction: %v", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"doctors", "hospitals", "ngos"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Fatalf("Failed to clear %s: %v", table, err)
		}
	}

	for _, d := range doctors {
		_, err := tx.Exec(`
			INSERT INTO doctors (id, name, specialization, qualification, phone,
				hospital, available_days, fee, address, latitude, longitude)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			uuid.New(), d.Name, d.Specialization, d.Qualification, d.Phone,
			d.Hospital, d.AvailableDays, d.Fee, d.Address, d.Latitude, d.Longitude)
		if err != nil {
			log.Fatalf("Failed to insert doctor %q: %v", d.Name, err)
		}
	}

	for _, h := range hospitals {
		_, err := tx.Exec(`
			INSERT INTO hospitals (id, name, type, address, phone,
				emergency_available, latitude, longitude, facilities)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.New(), h.Name, h.Type, h.Address, h.Phone,
			h.EmergencyAvailable, h.Latitude, h.Longitude, h.Facilities)
		if err != nil {
			log.Fatalf("Failed to insert hospital %q: %v", h.Name, err)
		}
	}

	for _, n := range ngos {
		_, err := tx.Exec(`
			INSERT INTO ngos (id, name, services, address, phone, email,
				latitude, longitude, working_areas)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.New(), n.Name, n.Services, n.Address, n.Phone, n.Email,
			n.Latitude, n.Longitude, n.WorkingAreas)
		if err != nil {
			log.Fatalf("Failed to insert NGO %q: %v", n.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit seed data: %v", err)
	}

	fmt.Printf("Seeded %d doctors, %d hospitals, %d NGOs\n",
		len(doctors), len(hospitals), len(ngos))
}
