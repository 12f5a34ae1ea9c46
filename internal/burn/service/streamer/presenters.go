package streamer

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
)

// Presenters fans an update out to every presenter. All of them are called even if some fail.
type Presenters []Presenter

// OnUpdate implements Presenter.
func (p Presenters) OnUpdate(ctx context.Context, update model.SeriesUpdate) error {
	var errs []error
	for _, presenter := range p {
		if err := presenter.OnUpdate(ctx, update); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
