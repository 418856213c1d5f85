package supabase

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"watch-atelier-backend/internal/customizer"
	"watch-atelier-backend/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

const caseColumns = `id, name, image, colors, has_dials, has_hands, has_rotors, has_straps, has_bezel, price, created_at, updated_at`

func scanCase(row interface{ Scan(...interface{}) error }) (*models.WatchCase, error) {
	var (
		watchCase  models.WatchCase
		colorsJSON []byte
	)
	err := row.Scan(
		&watchCase.ID, &watchCase.Name, &watchCase.Image, &colorsJSON,
		&watchCase.AvailableParts.Dials, &watchCase.AvailableParts.Hands,
		&watchCase.AvailableParts.Rotors, &watchCase.AvailableParts.Straps,
		&watchCase.AvailableParts.Bezel,
		&watchCase.Price, &watchCase.CreatedAt, &watchCase.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(colorsJSON) > 0 {
		if err := json.Unmarshal(colorsJSON, &watchCase.Colors); err != nil {
			return nil, fmt.Errorf("failed to decode case colors: %w", err)
		}
	}
	return &watchCase, nil
}

func (d *DatabaseClient) CreateCase(req *models.CaseRequest) (*models.WatchCase, error) {
	colorsJSON, _ := json.Marshal(req.Colors)

	row := d.db.QueryRow(`
		INSERT INTO watch_cases (name, image, colors, has_dials, has_hands, has_rotors, has_straps, has_bezel, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+caseColumns+`
	`, req.Name, req.Image, colorsJSON,
		req.AvailableParts.Dials, req.AvailableParts.Hands, req.AvailableParts.Rotors,
		req.AvailableParts.Straps, req.AvailableParts.Bezel, req.Price)

	watchCase, err := scanCase(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}
	return watchCase, nil
}

// GetCase returns a case by id. A miss (or an id that cannot be a
// key) is a NotFoundError; any other failure is an infrastructure
// error and stays wrapped so callers can tell the two apart.
func (d *DatabaseClient) GetCase(caseID string) (*models.WatchCase, error) {
	id, err := uuid.Parse(caseID)
	if err != nil {
		return nil, &customizer.NotFoundError{Resource: "case", Key: caseID}
	}

	row := d.db.QueryRow(`SELECT `+caseColumns+` FROM watch_cases WHERE id = $1`, id)
	watchCase, err := scanCase(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &customizer.NotFoundError{Resource: "case", Key: caseID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	return watchCase, nil
}

func (d *DatabaseClient) GetCaseByName(name string) (*models.WatchCase, error) {
	row := d.db.QueryRow(`SELECT `+caseColumns+` FROM watch_cases WHERE name = $1`, name)
	watchCase, err := scanCase(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &customizer.NotFoundError{Resource: "case", Key: name}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get case by name: %w", err)
	}
	return watchCase, nil
}

func (d *DatabaseClient) ListCases() ([]models.WatchCase, error) {
	rows, err := d.db.Query(`SELECT ` + caseColumns + ` FROM watch_cases ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	defer rows.Close()

	var cases []models.WatchCase
	for rows.Next() {
		watchCase, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case: %w", err)
		}
		cases = append(cases, *watchCase)
	}
	return cases, rows.Err()
}

func (d *DatabaseClient) UpdateCase(caseID string, req *models.CaseRequest) (*models.WatchCase, error) {
	id, err := uuid.Parse(caseID)
	if err != nil {
		return nil, fmt.Errorf("invalid case id: %w", err)
	}
	colorsJSON, _ := json.Marshal(req.Colors)

	row := d.db.QueryRow(`
		UPDATE watch_cases
		SET name = $1, image = $2, colors = $3,
		    has_dials = $4, has_hands = $5, has_rotors = $6, has_straps = $7, has_bezel = $8,
		    price = $9, updated_at = now()
		WHERE id = $10
		RETURNING `+caseColumns+`
	`, req.Name, req.Image, colorsJSON,
		req.AvailableParts.Dials, req.AvailableParts.Hands, req.AvailableParts.Rotors,
		req.AvailableParts.Straps, req.AvailableParts.Bezel, req.Price, id)

	watchCase, err := scanCase(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update case: %w", err)
	}
	return watchCase, nil
}

func (d *DatabaseClient) DeleteCase(caseID string) error {
	id, err := uuid.Parse(caseID)
	if err != nil {
		return fmt.Errorf("invalid case id: %w", err)
	}
	_, err = d.db.Exec(`DELETE FROM watch_cases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete case: %w", err)
	}
	return nil
}

const partColumns = `id, name, image, category, compatible_cases, price, created_at, updated_at`

func scanPart(row interface{ Scan(...interface{}) error }) (*models.WatchPart, error) {
	var part models.WatchPart
	err := row.Scan(
		&part.ID, &part.Name, &part.Image, &part.Category,
		pq.Array(&part.CompatibleCases), &part.Price,
		&part.CreatedAt, &part.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &part, nil
}

func (d *DatabaseClient) CreatePart(req *models.PartRequest) (*models.WatchPart, error) {
	row := d.db.QueryRow(`
		INSERT INTO watch_parts (name, image, category, compatible_cases, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+partColumns+`
	`, req.Name, req.Image, req.Category, pq.Array(req.CompatibleCases), req.Price)

	part, err := scanPart(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create part: %w", err)
	}
	return part, nil
}

func (d *DatabaseClient) GetPart(partID string) (*models.WatchPart, error) {
	id, err := uuid.Parse(partID)
	if err != nil {
		return nil, &customizer.NotFoundError{Resource: "part", Key: partID}
	}

	row := d.db.QueryRow(`SELECT `+partColumns+` FROM watch_parts WHERE id = $1`, id)
	part, err := scanPart(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &customizer.NotFoundError{Resource: "part", Key: partID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get part: %w", err)
	}
	return part, nil
}

func (d *DatabaseClient) ListParts(category models.PartCategory) ([]models.WatchPart, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if category == "" {
		rows, err = d.db.Query(`SELECT ` + partColumns + ` FROM watch_parts ORDER BY name`)
	} else {
		rows, err = d.db.Query(`SELECT `+partColumns+` FROM watch_parts WHERE category = $1 ORDER BY name`, category)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}
	defer rows.Close()

	var parts []models.WatchPart
	for rows.Next() {
		part, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan part: %w", err)
		}
		parts = append(parts, *part)
	}
	return parts, rows.Err()
}

// GetCompatibleParts returns the parts of a category whose
// compatibility list names the case, alphabetical by name. A part with
// an empty compatible_cases array never matches.
func (d *DatabaseClient) GetCompatibleParts(caseName string, category models.PartCategory) ([]models.WatchPart, error) {
	rows, err := d.db.Query(`
		SELECT `+partColumns+`
		FROM watch_parts
		WHERE category = $1 AND $2 = ANY(compatible_cases)
		ORDER BY name
	`, category, caseName)
	if err != nil {
		return nil, fmt.Errorf("failed to list compatible parts: %w", err)
	}
	defer rows.Close()

	var parts []models.WatchPart
	for rows.Next() {
		part, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan part: %w", err)
		}
		parts = append(parts, *part)
	}
	return parts, rows.Err()
}

func (d *DatabaseClient) UpdatePart(partID string, req *models.PartRequest) (*models.WatchPart, error) {
	id, err := uuid.Parse(partID)
	if err != nil {
		return nil, fmt.Errorf("invalid part id: %w", err)
	}

	row := d.db.QueryRow(`
		UPDATE watch_parts
		SET name = $1, image = $2, category = $3, compatible_cases = $4, price = $5, updated_at = now()
		WHERE id = $6
		RETURNING `+partColumns+`
	`, req.Name, req.Image, req.Category, pq.Array(req.CompatibleCases), req.Price, id)

	part, err := scanPart(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update part: %w", err)
	}
	return part, nil
}

func (d *DatabaseClient) DeletePart(partID string) error {
	id, err := uuid.Parse(partID)
	if err != nil {
		return fmt.Errorf("invalid part id: %w", err)
	}
	_, err = d.db.Exec(`DELETE FROM watch_parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete part: %w", err)
	}
	return nil
}
