package directory

import (
	"context"
	"database/sql"

	"wecare/internal/triage"
)

type Repository interface {
	ListDoctors(ctx context.Context, specialization string) ([]Doctor, error)
	ListHospitals(ctx context.Context, emergencyOnly bool) ([]Hospital, error)
	ListNGOs(ctx context.Context) ([]NGO, error)

	// FindDoctors implements triage.ReferralDirectory.
	FindDoctors(ctx context.Context, specialization string, limit int) ([]triage.Referral, error)
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) ListDoctors(ctx context.Context, specialization string) ([]Doctor, error) {
	query := `
		SELECT id, name, specialization, qualification, phone, hospital,
			available_days, fee, address, latitude, longitude
		FROM doctors
		WHERE $1 = '' OR specialization = $1
		ORDER BY fee ASC
	`
	rows, err := r.db.QueryContext(ctx, query, specialization)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Doctor
	for rows.Next() {
		var d Doctor
		var qualification, phone, hospital, days, address, lat, lon sql.NullString
		var fee sql.NullInt64
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialization, &qualification,
			&phone, &hospital, &days, &fee, &address, &lat, &lon); err != nil {
			return nil, err
		}
		d.Qualification = qualification.String
		d.Phone = phone.String
		d.Hospital = hospital.String
		d.AvailableDays = days.String
		d.Fee = int(fee.Int64)
		d.Address = address.String
		d.Latitude = lat.String
		d.Longitude = lon.String
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *postgresRepo) FindDoctors(ctx context.Context, specialization string, limit int) ([]triage.Referral, error) {
	query := `
		SELECT name, specialization, hospital, phone, fee
		FROM doctors WHERE specialization = $1
		ORDER BY fee ASC LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, specialization, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []triage.Referral
	for rows.Next() {
		var ref triage.Referral
		var hospital, phone sql.NullString
		var fee sql.NullInt64
		if err := rows.Scan(&ref.Name, &ref.Specialization, &hospital, &phone, &fee); err != nil {
			return nil, err
		}
		ref.Hospital = hospital.String
		ref.Phone = phone.String
		ref.Fee = int(fee.Int64)
		out = append(out, ref)
	}
	return out, rows.Err()
}

func (r *postgresRepo) ListHospitals(ctx context.Context, emergencyOnly bool) ([]Hospital, error) {
	query := `
		SELECT id, name, type, address, phone, emergency_available,
			latitude, longitude, facilities
		FROM hospitals
		WHERE NOT $1 OR emergency_available
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query, emergencyOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Hospital
	for rows.Next() {
		var h Hospital
		var hType, phone, lat, lon, facilities sql.NullString
		if err := rows.Scan(&h.ID, &h.Name, &hType, &h.Address, &phone,
			&h.EmergencyAvailable, &lat, &lon, &facilities); err != nil {
			return nil, err
		}
		h.Type = hType.String
		h.Phone = phone.String
		h.Latitude = lat.String
		h.Longitude = lon.String
		h.Facilities = facilities.String
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *postgresRepo) ListNGOs(ctx context.Context) ([]NGO, error) {
	query := `
		SELECT id, name, services, address, phone, email,
			latitude, longitude, working_areas
		FROM ngos ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []NGO
	for rows.Next() {
		var n NGO
		var services, phone, email, lat, lon, areas sql.NullString
		if err := rows.Scan(&n.ID, &n.Name, &services, &n.Address, &phone,
			&email, &lat, &lon, &areas); err != nil {
			return nil, err
		}
		n.Services = services.String
		n.Phone = phone.String
		n.Email = email.String
		n.Latitude = lat.String
		n.Longitude = lon.String
		n.WorkingAreas = areas.String
		out = append(out, n)
	}
	return out, rows.Err()
}
