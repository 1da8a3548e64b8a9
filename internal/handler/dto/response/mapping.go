package response

import (
	"estate-booking/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// copyInto maps a read model onto a response DTO by field name.
func copyInto(dst, src any) error {
	if err := copier.Copy(dst, src); err != nil {
		return errs.Wrap(err, "map response")
	}
	return nil
}
