//go:build lpc55

// internal/board/lpc55.go
package board

import (
	"github.com/tamzrod/hif-agent/internal/hif"
	"github.com/tamzrod/hif-agent/internal/mailbox"
)

// Name identifies the board family.
const Name = "lpc55"

// DataSize selects the constant-data tier for this family.
const DataSize = mailbox.DataSizeSmall

// Table returns the capability table for this family.
func Table() hif.Table { return baseTable() }
