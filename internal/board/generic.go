//go:build !stm32h7 && !lpc55

// internal/board/generic.go
package board

import (
	"github.com/tamzrod/hif-agent/internal/hif"
	"github.com/tamzrod/hif-agent/internal/mailbox"
)

// Name identifies the board family.
const Name = "generic"

// DataSize selects the constant-data tier for this family.
const DataSize = mailbox.DataSizeSmall

// Table returns the capability table for this family.
func Table() hif.Table { return baseTable() }
