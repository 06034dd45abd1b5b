//go:build stm32h7

// internal/board/stm32h7.go
package board

import (
	"github.com/tamzrod/hif-agent/internal/hif"
	"github.com/tamzrod/hif-agent/internal/mailbox"
)

// Name identifies the board family.
const Name = "stm32h7"

// DataSize selects the constant-data tier for this family. The H7 parts
// carry enough RAM for the large tier.
const DataSize = mailbox.DataSizeLarge

// Table returns the capability table for this family. Peripheral handlers
// (i2c, spi, pmbus) register after FuncBase when their drivers are linked in.
func Table() hif.Table { return baseTable() }
