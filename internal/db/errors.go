package db

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicate marks a store-enforced uniqueness breach. Callers match it
// with errors.Is instead of sniffing driver message text.
var ErrDuplicate = errors.New("duplicate entry")

// MySQL error 1062: ER_DUP_ENTRY
const dupEntry = 1062

func classify(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == dupEntry {
		return fmt.Errorf("%w: %s", ErrDuplicate, me.Message)
	}
	return err
}
