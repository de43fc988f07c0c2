package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"rental/internal/domain/entity"
	"rental/internal/domain/repository"
	"rental/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// overlap is a pair of bookings on the same property that share a day.
type overlap struct {
	first  *entity.Booking
	second *entity.Booking
}

func newAuditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Report bookings that overlap on the same property",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, closeDB, err := openRuntime()
			if err != nil {
				return err
			}
			defer closeDB()

			found, err := audit(cmd.Context(), postgres.NewPropertyRepository(rt.db), postgres.NewBookingRepository(rt.db), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if found > 0 {
				return errors.Errorf("%d overlapping booking pairs", found)
			}

			return nil
		},
	}
}

func audit(ctx context.Context, properties repository.PropertyRepository, bookings repository.BookingRepository, out io.Writer) (int, error) {
	catalog, err := properties.FindAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "list properties")
	}

	found := 0
	for _, property := range catalog {
		calendarRows, err := bookings.FindActiveByProperty(ctx, property.ID)
		if err != nil {
			return found, errors.Wrapf(err, "list bookings of %s", property.ID)
		}

		for _, o := range findOverlaps(calendarRows) {
			found++
			fmt.Fprintf(out, "property %s: booking %s (%s) overlaps booking %s (%s)\n",
				property.ID, o.first.ID, o.first.Range(), o.second.ID, o.second.Range())
		}
	}
	fmt.Fprintf(out, "checked %d properties, %d overlapping pairs\n", len(catalog), found)

	return found, nil
}

// findOverlaps returns every overlapping pair. After sorting by start date a
// booking can only collide with later ones that start on or before its end.
func findOverlaps(bookings []*entity.Booking) []overlap {
	sorted := make([]*entity.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})

	var out []overlap
	for i, a := range sorted {
		for _, b := range sorted[i+1:] {
			if b.StartDate.After(a.EndDate) {
				break
			}
			out = append(out, overlap{first: a, second: b})
		}
	}

	return out
}
