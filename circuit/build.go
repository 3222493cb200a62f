// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package circuit

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	bdd "github.com/jp-pino/VDSProject"
)

// LoadNetlist reads and parses the netlist file at path from fs, wrapping
// any filesystem error as ErrIO (spec §7). Taking an afero.Fs instead of
// the os package directly keeps this path testable against an in-memory
// filesystem.
func LoadNetlist(fs afero.Fs, path string) (*Netlist, error) {
	const op = "LoadNetlist"
	source, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, ioError(op, err)
	}
	return ParseNetlist(path, string(source))
}

// The ten gate kinds the circuit driver contract recognizes (spec §6).
const (
	kindInput    = "INPUT"
	kindNot      = "NOT"
	kindAnd      = "AND"
	kindOr       = "OR"
	kindNand     = "NAND"
	kindNor      = "NOR"
	kindXor      = "XOR"
	kindBuffer   = "BUFFER"
	kindOutput   = "OUTPUT"
	kindFlipFlop = "FLIP_FLOP"
)

// Build walks net's topologically sorted gate list and maps each gate to a
// node id of mgr, following the circuit driver contract of spec §6:
// CreateVar for INPUT, the corresponding Boolean operator reduction for
// gates, the operand's own id passed through unchanged for BUFFER, OUTPUT
// and FLIP_FLOP. It fails with ErrInputNotFound if a gate references an
// operand id not yet produced earlier in the topological order, and with
// ErrUnknownGateKind for any kind outside the ten the contract names.
func Build(mgr *bdd.Manager, net *Netlist, logger *zap.Logger) (ids map[int]bdd.ID, err error) {
	const op = "Build"
	if logger == nil {
		logger = zap.NewNop()
	}
	defer func() {
		if err != nil {
			ids = nil
		}
	}()
	defer bdd.RecoverInternal(op, &err)
	ids = make(map[int]bdd.ID, len(net.Gates))

	operand := func(gate *Gate, k int) (bdd.ID, error) {
		opID := gate.Operands[k]
		id, ok := ids[opID]
		if !ok {
			return 0, inputNotFound(op, gate.ID, opID)
		}
		return id, nil
	}

	for _, gate := range net.Gates {
		switch gate.Kind {
		case kindInput:
			ids[gate.ID] = mgr.CreateVar(fmt.Sprintf("g%d", gate.ID))

		case kindNot, kindBuffer, kindOutput, kindFlipFlop:
			if len(gate.Operands) != 1 {
				return nil, unknownGateKind(op, gate.ID, fmt.Sprintf("%s with %d operands", gate.Kind, len(gate.Operands)))
			}
			in, err := operand(gate, 0)
			if err != nil {
				return nil, err
			}
			switch gate.Kind {
			case kindNot:
				ids[gate.ID] = mgr.Neg(in)
			default: // BUFFER, OUTPUT, FLIP_FLOP: no new node
				ids[gate.ID] = in
			}

		case kindAnd, kindOr, kindXor:
			if len(gate.Operands) < 1 {
				return nil, unknownGateKind(op, gate.ID, fmt.Sprintf("%s with no operands", gate.Kind))
			}
			acc, err := operand(gate, 0)
			if err != nil {
				return nil, err
			}
			for k := 1; k < len(gate.Operands); k++ {
				next, err := operand(gate, k)
				if err != nil {
					return nil, err
				}
				switch gate.Kind {
				case kindAnd:
					acc = mgr.And2(acc, next)
				case kindOr:
					acc = mgr.Or2(acc, next)
				case kindXor:
					acc = mgr.Xor2(acc, next)
				}
			}
			ids[gate.ID] = acc

		case kindNand, kindNor:
			if len(gate.Operands) < 1 {
				return nil, unknownGateKind(op, gate.ID, fmt.Sprintf("%s with no operands", gate.Kind))
			}
			acc, err := operand(gate, 0)
			if err != nil {
				return nil, err
			}
			for k := 1; k < len(gate.Operands); k++ {
				next, err := operand(gate, k)
				if err != nil {
					return nil, err
				}
				if gate.Kind == kindNand {
					acc = mgr.And2(acc, next)
				} else {
					acc = mgr.Or2(acc, next)
				}
			}
			ids[gate.ID] = mgr.Neg(acc)

		default:
			return nil, unknownGateKind(op, gate.ID, gate.Kind)
		}
	}

	logger.Info("circuit built", zap.Int("gates", len(net.Gates)))
	return ids, nil
}
