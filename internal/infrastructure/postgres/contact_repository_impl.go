package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-contact-management/internal/domain/entity"
	"github.com/oksasatya/go-contact-management/internal/domain/repository"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

const contactColumns = `id, username, first_name, last_name, email, phone, created_at, updated_at`

func scanContact(row pgx.Row) (*entity.Contact, error) {
	c := &entity.Contact{}
	if err := row.Scan(&c.ID, &c.Username, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO contacts (username, first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, c.Username, c.FirstName, c.LastName, c.Email, c.Phone)

	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *ContactRepository) GetByIDAndUsername(ctx context.Context, id int64, username string) (*entity.Contact, error) {
	return scanContact(r.pool.QueryRow(ctx, `
		SELECT `+contactColumns+`
		FROM contacts
		WHERE id = $1 AND username = $2
	`, id, username))
}

func (r *ContactRepository) Update(ctx context.Context, c *entity.Contact) error {
	c.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE contacts
		SET first_name = $1, last_name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $6 AND username = $7
	`, c.FirstName, c.LastName, c.Email, c.Phone, c.UpdatedAt, c.ID, c.Username)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int64, username string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1 AND username = $2`, id, username)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ContactRepository) Search(ctx context.Context, f repository.ContactFilter, offset, limit int) ([]entity.Contact, error) {
	where, args := buildContactWhere(f)
	args = append(args, limit, offset)
	q := `SELECT ` + contactColumns + ` FROM contacts WHERE ` + where +
		` ORDER BY id ASC LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Contact, 0, limit)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *ContactRepository) Count(ctx context.Context, f repository.ContactFilter) (int, error) {
	where, args := buildContactWhere(f)
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM contacts WHERE `+where, args...).Scan(&n)
	return n, err
}

// buildContactWhere renders the filter as a positional WHERE clause.
func buildContactWhere(f repository.ContactFilter) (string, []any) {
	args := []any{f.Username}
	conds := []string{"username = $1"}
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.Name != nil {
		p := next(containsPattern(*f.Name))
		conds = append(conds, "(first_name ILIKE "+p+" OR last_name ILIKE "+p+")")
	}
	if f.Email != nil {
		conds = append(conds, "email LIKE "+next(containsPattern(*f.Email)))
	}
	if f.Phone != nil {
		conds = append(conds, "phone LIKE "+next(containsPattern(*f.Phone)))
	}
	return strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
