package program

import (
	"unsafe"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/onledger/zerocast/pkg/runtime"
	"github.com/onledger/zerocast/pkg/solana"
)

// InstructionCode is the one-byte tag leading every instruction payload.
type InstructionCode uint8

// Action is one instruction handler, built once per invocation from the
// host-supplied account list, then driven through its two remaining phases.
//
// Validate must not mutate any account buffer or issue outbound calls; a
// failure there aborts before any state change. Execute is the point of no
// return: mutations and outbound calls are permitted, and a failure after a
// mutation surfaces to the host, whose all-or-nothing commit reverts
// everything.
type Action[P any] interface {
	Validate(programID solana.Pubkey, params *P) error
	Execute(programID solana.Pubkey, params *P) error
}

// BuildFunc constructs an Action from the account list and decoded
// parameters. It slices out exactly the records the handler needs through
// view, shard, and wrapper constructors, validating ownership against
// programID.
type BuildFunc[P any, A Action[P]] func(programID solana.Pubkey, accounts []*runtime.Account, params *P) (A, error)

type handlerFunc func(accounts []*runtime.Account, data []byte) error

// Processor decodes instruction payloads and drives the matching handler
// through build, validate, and execute.
type Processor struct {
	programID solana.Pubkey
	handlers  map[InstructionCode]handlerFunc
	log       *logrus.Entry
}

// NewProcessor creates a Processor for the given program id. Handlers are
// attached with Register before the first Process call.
func NewProcessor(programID solana.Pubkey) *Processor {
	return &Processor{
		programID: programID,
		handlers:  make(map[InstructionCode]handlerFunc),
		log: logrus.StandardLogger().
			WithField("type", "program/processor").
			WithField("program", programID.String()),
	}
}

// ProgramID returns the id the processor validates ownership against.
func (p *Processor) ProgramID() solana.Pubkey {
	return p.programID
}

// Register attaches a handler for an instruction code. The parameter type P
// must be a fixed-layout struct; its bytes follow the code in the payload.
// Registering the same code twice is a wiring bug and panics.
func Register[P any, A Action[P]](p *Processor, code InstructionCode, name string, build BuildFunc[P, A]) {
	if _, ok := p.handlers[code]; ok {
		panic(errors.Errorf("instruction code %d registered twice", code))
	}

	log := p.log.WithField("instruction", name)
	p.handlers[code] = func(accounts []*runtime.Account, data []byte) error {
		params, err := decodeParams[P](data)
		if err != nil {
			log.WithError(err).Debug("failed to decode params")
			return err
		}

		action, err := build(p.programID, accounts, &params)
		if err != nil {
			log.WithError(err).Debug("build failed")
			return err
		}

		if err := action.Validate(p.programID, &params); err != nil {
			log.WithError(err).Debug("validation failed")
			return err
		}

		if err := action.Execute(p.programID, &params); err != nil {
			log.WithError(err).Warn("execution failed")
			return err
		}

		return nil
	}
}

// Process runs one instruction invocation: decode the leading tag, decode the
// fixed-size parameters, then build, validate, and execute the matching
// handler against the account list.
func (p *Processor) Process(accounts []*runtime.Account, data []byte) error {
	if len(data) == 0 {
		return ErrInvalidInstructionData
	}

	handler, ok := p.handlers[InstructionCode(data[0])]
	if !ok {
		return ErrUnknownInstruction
	}

	return handler(accounts, data[1:])
}

// decodeParams materializes the fixed-size parameter value from the payload
// bytes following the tag. The single copy stands in for an unaligned
// reinterpretation of the payload; parameter types carry no references, so a
// by-value read is equivalent.
func decodeParams[P any](data []byte) (P, error) {
	var params P
	size := int(unsafe.Sizeof(params))
	if len(data) < size {
		return params, ErrInvalidInstructionData
	}
	if size > 0 {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&params)), size), data[:size])
	}
	return params, nil
}

// AccountAt returns the account at index, or ErrNotEnoughAccountKeys when the
// host-supplied list is shorter than the handler requires.
func AccountAt(accounts []*runtime.Account, index int) (*runtime.Account, error) {
	if index >= len(accounts) {
		return nil, ErrNotEnoughAccountKeys
	}
	return accounts[index], nil
}
