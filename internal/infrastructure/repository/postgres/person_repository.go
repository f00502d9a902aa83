package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/ligadavila/copa-engine/internal/domain/person"
	qb "github.com/ligadavila/copa-engine/internal/platform/querybuilder"
)

type personTableModel struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Short string `db:"short"`
	Hood  string `db:"hood"`
}

type PersonRepository struct {
	db *sqlx.DB
}

func NewPersonRepository(db *sqlx.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) GetByID(ctx context.Context, personID string) (person.Person, bool, error) {
	query, args, err := qb.Select("id", "name", "short", "hood").
		From("people").
		Where(qb.Eq("id", personID)).
		ToSQL()
	if err != nil {
		return person.Person{}, false, crerr.Wrap(err, "build select person query")
	}

	var row personTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return person.Person{}, false, nil
		}
		return person.Person{}, false, crerr.Wrap(err, "select person")
	}

	return person.Person{ID: row.ID, Name: row.Name, Short: row.Short, Hood: row.Hood}, true, nil
}
