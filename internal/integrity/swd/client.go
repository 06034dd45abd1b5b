// internal/integrity/swd/client.go

// Package swd implements the debug-link driver over a Modbus register
// bridge: a bench adapter that exposes the target's program flash as input
// registers, two flash bytes per register, big-endian. Transport is TCP or
// RTU depending on how the bridge is attached.
package swd

import (
	"time"

	"github.com/goburrow/modbus"
	"github.com/pkg/errors"
)

// maxRegsPerRead is the Modbus read-input-registers limit.
const maxRegsPerRead = 125

const (
	TransportTCP = "tcp"
	TransportRTU = "rtu"
)

// Config is the bridge attachment.
type Config struct {
	Transport    string        // TransportTCP or TransportRTU
	Endpoint     string        // host:port, or serial device path for rtu
	UnitID       byte          // bridge unit id
	Timeout      time.Duration // per round trip
	BaseRegister uint16        // register backed by FlashBase
	FlashBase    uint32        // flash address of BaseRegister
}

// handler is the slice of the goburrow handler types the client manages.
type handler interface {
	modbus.ClientHandler
	Connect() error
	Close() error
}

// registerReader is the one Modbus operation the bridge needs.
type registerReader interface {
	ReadInputRegisters(address, quantity uint16) ([]byte, error)
}

// Client is a Link driver for the integrity task. One attempt per call;
// retry policy belongs to the caller.
type Client struct {
	cfg Config
	h   handler
	cli registerReader

	cur uint32
	end uint32
}

// New builds an unconnected client; Setup establishes the transport.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("swd: endpoint required")
	}

	var h handler
	switch cfg.Transport {
	case TransportTCP:
		th := modbus.NewTCPClientHandler(cfg.Endpoint)
		th.Timeout = cfg.Timeout
		th.SlaveId = cfg.UnitID
		h = th
	case TransportRTU:
		rh := modbus.NewRTUClientHandler(cfg.Endpoint)
		rh.Timeout = cfg.Timeout
		rh.SlaveId = cfg.UnitID
		rh.BaudRate = 115200
		rh.DataBits = 8
		rh.Parity = "N"
		rh.StopBits = 1
		h = rh
	default:
		return nil, errors.Errorf("swd: unknown transport %q", cfg.Transport)
	}

	return &Client{cfg: cfg, h: h, cli: modbus.NewClient(h)}, nil
}

// Setup (re)establishes the bridge connection.
func (c *Client) Setup() error {
	c.h.Close()
	if err := c.h.Connect(); err != nil {
		return errors.Wrap(err, "swd: connect")
	}
	return nil
}

// ReadTransactionStart opens a read window. Addresses must be even: the
// bridge has no sub-register addressing.
func (c *Client) ReadTransactionStart(from, to uint32) error {
	if from%2 != 0 || to%2 != 0 {
		return errors.Errorf("swd: unaligned window %#x..%#x", from, to)
	}
	if to < from {
		return errors.Errorf("swd: inverted window %#x..%#x", from, to)
	}
	if from < c.cfg.FlashBase {
		return errors.Errorf("swd: window %#x..%#x below bridge base %#x", from, to, c.cfg.FlashBase)
	}
	c.cur = from
	c.end = to
	return nil
}

// ReadTransaction fills buf from the window cursor and advances it. Reads
// larger than one Modbus request are split.
func (c *Client) ReadTransaction(buf []byte) error {
	if len(buf)%2 != 0 {
		return errors.New("swd: read length must be even")
	}
	if c.end == 0 {
		return errors.New("swd: no open window")
	}
	if c.cur+uint32(len(buf)) > c.end {
		return errors.Errorf("swd: read past window end %#x", c.end)
	}

	for done := 0; done < len(buf); {
		regs := (len(buf) - done) / 2
		if regs > maxRegsPerRead {
			regs = maxRegsPerRead
		}

		addr := c.cfg.BaseRegister + uint16((c.cur-c.cfg.FlashBase)/2)
		raw, err := c.cli.ReadInputRegisters(addr, uint16(regs))
		if err != nil {
			return errors.Wrapf(err, "swd: read %d regs at %d", regs, addr)
		}
		if len(raw) != regs*2 {
			return errors.Errorf("swd: short read: got %d bytes want %d", len(raw), regs*2)
		}

		copy(buf[done:], raw)
		done += regs * 2
		c.cur += uint32(regs * 2)
	}

	return nil
}
