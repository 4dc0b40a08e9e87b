package permit

import "time"

// GateResult classifies the outcome of a gate check.
type GateResult string

const (
	// GateValidUnconsumed means the visitor has not entered yet and may check in.
	GateValidUnconsumed GateResult = "valid_unconsumed"
	// GateValidConsumed means the visitor is already inside; the scan is informational.
	GateValidConsumed GateResult = "valid_consumed"
)

// GateVerdict is the advisory payload shown to the entry guard. Producing a
// verdict never mutates the permit; state changes go through CheckIn/CheckOut.
type GateVerdict struct {
	PermitID          uint
	VisitorName       string
	VisitorNationalID string
	ResidentName      string
	Result            GateResult
	Message           string
}

// GateCheck evaluates a scanned permit against a fixed instant. Rules are
// applied in order, first match wins:
//
//	deactivated > expired > not yet valid > consumed > already inside > may enter
//
// The caller resolves the QR token to Details beforehand; an unknown token
// never reaches this function.
func GateCheck(d *Details, now time.Time) (*GateVerdict, error) {
	p := d.Permit

	if !p.Lifecycle().IsActive() {
		return nil, ErrPermitDeactivated
	}
	if now.After(p.ValidUntil()) {
		return nil, ErrQRExpired
	}
	if now.Before(p.ValidFrom()) {
		return nil, ErrPermitNotYetValid
	}
	if p.IsConsumed() {
		return nil, ErrPermitConsumed
	}

	verdict := &GateVerdict{
		PermitID:          p.ID(),
		VisitorName:       d.VisitorName,
		VisitorNationalID: d.VisitorNationalID,
		ResidentName:      d.ResidentName,
	}

	if p.EntryTime() != nil {
		verdict.Result = GateValidConsumed
		verdict.Message = "visitor is already inside"
		return verdict, nil
	}

	verdict.Result = GateValidUnconsumed
	verdict.Message = "visitor may check in"
	return verdict, nil
}
