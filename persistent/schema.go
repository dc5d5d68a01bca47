package persistent

import (
	"context"
	"fmt"
	"reflect"

	"github.com/buzkaaclicker/folio"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"
)

var models = []interface{}{
	(*Project)(nil),
	(*Profile)(nil),
	(*Hobby)(nil),
}

// CreateSchema creates every folio table that does not exist yet.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	for _, model := range models {
		modelType := reflect.TypeOf(model)
		logrus.WithField("model", modelType).Debugln("Creating table.")
		_, err := db.NewCreateTable().IfNotExists().Model(model).Exec(ctx)
		if err != nil {
			return fmt.Errorf("create table %s: %w", modelType, err)
		}
	}
	return nil
}

type Prober struct {
	DB *bun.DB
}

var _ folio.TableProber = (*Prober)(nil)

func (p *Prober) Probe(ctx context.Context, table string) error {
	_, err := p.DB.NewSelect().
		TableExpr("?", bun.Ident(table)).
		Column("id").
		Limit(1).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("probe %s: %w", table, mapError(err))
	}
	return nil
}
