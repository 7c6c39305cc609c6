package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rvcosta/txledger/internal/domain"
	"github.com/rvcosta/txledger/internal/export"
)

// WriteSnapshots renders account snapshots as CSV with the header
// "client,available,held,total,locked". Amounts carry exactly four
// fractional digits, trailing zeros included.
func WriteSnapshots(w io.Writer, snaps []export.Snapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, s := range snaps {
		row := []string{
			strconv.FormatUint(uint64(s.Client), 10),
			domain.FormatAmount(s.Available),
			domain.FormatAmount(s.Held),
			domain.FormatAmount(s.Total),
			strconv.FormatBool(s.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
