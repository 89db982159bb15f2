// Package schema validates records against the CUE definitions embedded in
// records.cue. Records are encoded as JSON, unified with their definition and
// checked for concreteness, so any constraint violation or unknown field is
// reported as types.ErrInvalidData.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"

	"github.com/mesh-intelligence/nexus/pkg/types"
)

//go:embed records.cue
var recordsCUE string

// Definition names in records.cue.
const (
	defStock = "#StockItem"
	defSale  = "#SaleRecord"
	defCrew  = "#CrewMember"
)

// Validator checks records against the embedded schema. It is safe for
// concurrent use.
type Validator struct {
	mu     sync.Mutex
	ctx    *cue.Context
	schema cue.Value
}

// New compiles the embedded schema.
func New() (*Validator, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(recordsCUE, cue.Filename("records.cue"))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compiling record schema: %w", err)
	}
	return &Validator{ctx: ctx, schema: v}, nil
}

// Stock validates a stock item.
func (v *Validator) Stock(item types.StockItem) error {
	return v.validate(defStock, item)
}

// Sale validates a sale record.
func (v *Validator) Sale(sale types.SaleRecord) error {
	return v.validate(defSale, sale)
}

// Crew validates a crew member.
func (v *Validator) Crew(member types.CrewMember) error {
	return v.validate(defCrew, member)
}

func (v *Validator) validate(def string, rec any) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	value := v.ctx.CompileBytes(data)
	if err := value.Err(); err != nil {
		return fmt.Errorf("%w: %s", types.ErrInvalidData, err)
	}
	unified := v.schema.LookupPath(cue.ParsePath(def)).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %s", types.ErrInvalidData, describe(err))
	}
	return nil
}

// describe flattens a CUE error list into one line.
func describe(err error) string {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err.Error()
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}
