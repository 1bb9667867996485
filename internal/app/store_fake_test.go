package app

import (
	"context"
	"database/sql"

	"taxguide/api/internal/store"
)

// fakeStore satisfies Store with overridable function fields. Unset readers
// report not-found or empty lists; unset inserts echo the record with id 1.
type fakeStore struct {
	pingErr    error
	comparison func(ctx context.Context) (store.ComparisonData, error)

	listTaxBrackets  func(ctx context.Context, q store.ListQuery) ([]store.TaxBracket, error)
	getTaxBracket    func(ctx context.Context, id int64) (store.TaxBracket, error)
	insertTaxBracket func(ctx context.Context, b store.TaxBracket) (store.TaxBracket, error)
	updateTaxBracket func(ctx context.Context, id int64, upd store.TaxBracketUpdate) (store.TaxBracket, error)
	deleteTaxBracket func(ctx context.Context, id int64) (store.TaxBracket, error)

	listStandardDeductions  func(ctx context.Context, q store.ListQuery) ([]store.StandardDeduction, error)
	getStandardDeduction    func(ctx context.Context, id int64) (store.StandardDeduction, error)
	insertStandardDeduction func(ctx context.Context, d store.StandardDeduction) (store.StandardDeduction, error)
	updateStandardDeduction func(ctx context.Context, id int64, upd store.StandardDeductionUpdate) (store.StandardDeduction, error)
	deleteStandardDeduction func(ctx context.Context, id int64) (store.StandardDeduction, error)

	listRetirementLimits  func(ctx context.Context, q store.ListQuery) ([]store.RetirementLimit, error)
	getRetirementLimit    func(ctx context.Context, id int64) (store.RetirementLimit, error)
	insertRetirementLimit func(ctx context.Context, l store.RetirementLimit) (store.RetirementLimit, error)
	updateRetirementLimit func(ctx context.Context, id int64, upd store.RetirementLimitUpdate) (store.RetirementLimit, error)
	deleteRetirementLimit func(ctx context.Context, id int64) (store.RetirementLimit, error)

	listSaltDeductions  func(ctx context.Context, q store.ListQuery) ([]store.SaltDeduction, error)
	getSaltDeduction    func(ctx context.Context, id int64) (store.SaltDeduction, error)
	insertSaltDeduction func(ctx context.Context, d store.SaltDeduction) (store.SaltDeduction, error)
	updateSaltDeduction func(ctx context.Context, id int64, upd store.SaltDeductionUpdate) (store.SaltDeduction, error)
	deleteSaltDeduction func(ctx context.Context, id int64) (store.SaltDeduction, error)

	listProvisions  func(ctx context.Context, q store.ListQuery) ([]store.Provision, error)
	getProvision    func(ctx context.Context, id int64) (store.Provision, error)
	insertProvision func(ctx context.Context, p store.Provision) (store.Provision, error)
	updateProvision func(ctx context.Context, id int64, upd store.ProvisionUpdate) (store.Provision, error)
	deleteProvision func(ctx context.Context, id int64) (store.Provision, error)

	listGovernmentReferences  func(ctx context.Context, q store.ListQuery) ([]store.GovernmentReference, error)
	getGovernmentReference    func(ctx context.Context, id int64) (store.GovernmentReference, error)
	insertGovernmentReference func(ctx context.Context, g store.GovernmentReference) (store.GovernmentReference, error)
	updateGovernmentReference func(ctx context.Context, id int64, upd store.GovernmentReferenceUpdate) (store.GovernmentReference, error)
	deleteGovernmentReference func(ctx context.Context, id int64) (store.GovernmentReference, error)

	listEntityImpacts  func(ctx context.Context, q store.ListQuery) ([]store.EntityImpact, error)
	getEntityImpact    func(ctx context.Context, id int64) (store.EntityImpact, error)
	insertEntityImpact func(ctx context.Context, e store.EntityImpact) (store.EntityImpact, error)
	updateEntityImpact func(ctx context.Context, id int64, upd store.EntityImpactUpdate) (store.EntityImpact, error)
	deleteEntityImpact func(ctx context.Context, id int64) (store.EntityImpact, error)
}

func (f *fakeStore) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeStore) Comparison(ctx context.Context) (store.ComparisonData, error) {
	if f.comparison != nil {
		return f.comparison(ctx)
	}
	return store.ComparisonData{
		TaxBrackets:        map[int][]store.TaxBracket{},
		StandardDeductions: map[int][]store.StandardDeduction{},
		RetirementLimits:   map[int][]store.RetirementLimit{},
		SaltDeductions:     map[int][]store.SaltDeduction{},
	}, nil
}

func (f *fakeStore) ListTaxBrackets(ctx context.Context, q store.ListQuery) ([]store.TaxBracket, error) {
	if f.listTaxBrackets != nil {
		return f.listTaxBrackets(ctx, q)
	}
	return []store.TaxBracket{}, nil
}

func (f *fakeStore) GetTaxBracket(ctx context.Context, id int64) (store.TaxBracket, error) {
	if f.getTaxBracket != nil {
		return f.getTaxBracket(ctx, id)
	}
	return store.TaxBracket{}, sql.ErrNoRows
}

func (f *fakeStore) InsertTaxBracket(ctx context.Context, b store.TaxBracket) (store.TaxBracket, error) {
	if f.insertTaxBracket != nil {
		return f.insertTaxBracket(ctx, b)
	}
	b.ID = 1
	return b, nil
}

func (f *fakeStore) UpdateTaxBracket(ctx context.Context, id int64, upd store.TaxBracketUpdate) (store.TaxBracket, error) {
	if f.updateTaxBracket != nil {
		return f.updateTaxBracket(ctx, id, upd)
	}
	return store.TaxBracket{}, sql.ErrNoRows
}

func (f *fakeStore) DeleteTaxBracket(ctx context.Context, id int64) (store.TaxBracket, error) {
	if f.deleteTaxBracket != nil {
		return f.deleteTaxBracket(ctx, id)
	}
	return store.TaxBracket{}, sql.ErrNoRows
}

func (f *fakeStore) ListStandardDeductions(ctx context.Context, q store.ListQuery) ([]store.StandardDeduction, error) {
	if f.listStandardDeductions != nil {
		return f.listStandardDeductions(ctx, q)
	}
	return []store.StandardDeduction{}, nil
}

func (f *fakeStore) GetStandardDeduction(ctx context.Context, id int64) (store.StandardDeduction, error) {
	if f.getStandardDeduction != nil {
		return f.getStandardDeduction(ctx, id)
	}
	return store.StandardDeduction{}, sql.ErrNoRows
}

func (f *fakeStore) InsertStandardDeduction(ctx context.Context, d store.StandardDeduction) (store.StandardDeduction, error) {
	if f.insertStandardDeduction != nil {
		return f.insertStandardDeduction(ctx, d)
	}
	d.ID = 1
	return d, nil
}

func (f *fakeStore) UpdateStandardDeduction(ctx context.Context, id int64, upd store.StandardDeductionUpdate) (store.StandardDeduction, error) {
	if f.updateStandardDeduction != nil {
		return f.updateStandardDeduction(ctx, id, upd)
	}
	return store.StandardDeduction{}, sql.ErrNoRows
}

func (f *fakeStore) DeleteStandardDeduction(ctx context.Context, id int64) (store.StandardDeduction, error) {
	if f.deleteStandardDeduction != nil {
		return f.deleteStandardDeduction(ctx, id)
	}
	return store.StandardDeduction{}, sql.ErrNoRows
}

func (f *fakeStore) ListRetirementLimits(ctx context.Context, q store.ListQuery) ([]store.RetirementLimit, error) {
	if f.listRetirementLimits != nil {
		return f.listRetirementLimits(ctx, q)
	}
	return []store.RetirementLimit{}, nil
}

func (f *fakeStore) GetRetirementLimit(ctx context.Context, id int64) (store.RetirementLimit, error) {
	if f.getRetirementLimit != nil {
		return f.getRetirementLimit(ctx, id)
	}
	return store.RetirementLimit{}, sql.ErrNoRows
}

func (f *fakeStore) InsertRetirementLimit(ctx context.Context, l store.RetirementLimit) (store.RetirementLimit, error) {
	if f.insertRetirementLimit != nil {
		return f.insertRetirementLimit(ctx, l)
	}
	l.ID = 1
	return l, nil
}

func (f *fakeStore) UpdateRetirementLimit(ctx context.Context, id int64, upd store.RetirementLimitUpdate) (store.RetirementLimit, error) {
	if f.updateRetirementLimit != nil {
		return f.updateRetirementLimit(ctx, id, upd)
	}
	return store.RetirementLimit{}, sql.ErrNoRows
}

func (f *fakeStore) DeleteRetirementLimit(ctx context.Context, id int64) (store.RetirementLimit, error) {
	if f.deleteRetirementLimit != nil {
		return f.deleteRetirementLimit(ctx, id)
	}
	return store.RetirementLimit{}, sql.ErrNoRows
}

func (f *fakeStore) ListSaltDeductions(ctx context.Context, q store.ListQuery) ([]store.SaltDeduction, error) {
	if f.listSaltDeductions != nil {
		return f.listSaltDeductions(ctx, q)
	}
	return []store.SaltDeduction{}, nil
}

func (f *fakeStore) GetSaltDeduction(ctx context.Context, id int64) (store.SaltDeduction, error) {
	if f.getSaltDeduction != nil {
		return f.getSaltDeduction(ctx, id)
	}
	return store.SaltDeduction{}, sql.ErrNoRows
}

func (f *fakeStore) InsertSaltDeduction(ctx context.Context, d store.SaltDeduction) (store.SaltDeduction, error) {
	if f.insertSaltDeduction != nil {
		return f.insertSaltDeduction(ctx, d)
	}
	d.ID = 1
	return d, nil
}

func (f *fakeStore) UpdateSaltDeduction(ctx context.Context, id int64, upd store.SaltDeductionUpdate) (store.SaltDeduction, error) {
	if f.updateSaltDeduction != nil {
		return f.updateSaltDeduction(ctx, id, upd)
	}
	return store.SaltDeduction{}, sql.ErrNoRows
}

func (f *fakeStore) DeleteSaltDeduction(ctx context.Context, id int64) (store.SaltDeduction, error) {
	if f.deleteSaltDeduction != nil {
		return f.deleteSaltDeduction(ctx, id)
	}
	return store.SaltDeduction{}, sql.ErrNoRows
}

func (f *fakeStore) ListProvisions(ctx context.Context, q store.ListQuery) ([]store.Provision, error) {
	if f.listProvisions != nil {
		return f.listProvisions(ctx, q)
	}
	return []store.Provision{}, nil
}

func (f *fakeStore) GetProvision(ctx context.Context, id int64) (store.Provision, error) {
	if f.getProvision != nil {
		return f.getProvision(ctx, id)
	}
	return store.Provision{}, sql.ErrNoRows
}

func (f *fakeStore) InsertProvision(ctx context.Context, p store.Provision) (store.Provision, error) {
	if f.insertProvision != nil {
		return f.insertProvision(ctx, p)
	}
	p.ID = 1
	return p, nil
}

func (f *fakeStore) UpdateProvision(ctx context.Context, id int64, upd store.ProvisionUpdate) (store.Provision, error) {
	if f.updateProvision != nil {
		return f.updateProvision(ctx, id, upd)
	}
	return store.Provision{}, sql.ErrNoRows
}

func (f *fakeStore) DeleteProvision(ctx context.Context, id int64) (store.Provision, error) {
	if f.deleteProvision != nil {
		return f.deleteProvision(ctx, id)
	}
	return store.Provision{}, sql.ErrNoRows
}

func (f *fakeStore) ListGovernmentReferences(ctx context.Context, q store.ListQuery) ([]store.GovernmentReference, error) {
	if f.listGovernmentReferences != nil {
		return f.listGovernmentReferences(ctx, q)
	}
	return []store.GovernmentReference{}, nil
}

func (f *fakeStore) GetGovernmentReference(ctx context.Context, id int64) (store.GovernmentReference, error) {
	if f.getGovernmentReference != nil {
		return f.getGovernmentReference(ctx, id)
	}
	return store.GovernmentReference{}, sql.ErrNoRows
}

func (f *fakeStore) InsertGovernmentReference(ctx context.Context, g store.GovernmentReference) (store.GovernmentReference, error) {
	if f.insertGovernmentReference != nil {
		return f.insertGovernmentReference(ctx, g)
	}
	g.ID = 1
	return g, nil
}

func (f *fakeStore) UpdateGovernmentReference(ctx context.Context, id int64, upd store.GovernmentReferenceUpdate) (store.GovernmentReference, error) {
	if f.updateGovernmentReference != nil {
		return f.updateGovernmentReference(ctx, id, upd)
	}
	return store.GovernmentReference{}, sql.ErrNoRows
}

func (f *fakeStore) DeleteGovernmentReference(ctx context.Context, id int64) (store.GovernmentReference, error) {
	if f.deleteGovernmentReference != nil {
		return f.deleteGovernmentReference(ctx, id)
	}
	return store.GovernmentReference{}, sql.ErrNoRows
}

func (f *fakeStore) ListEntityImpacts(ctx context.Context, q store.ListQuery) ([]store.EntityImpact, error) {
	if f.listEntityImpacts != nil {
		return f.listEntityImpacts(ctx, q)
	}
	return []store.EntityImpact{}, nil
}

func (f *fakeStore) GetEntityImpact(ctx context.Context, id int64) (store.EntityImpact, error) {
	if f.getEntityImpact != nil {
		return f.getEntityImpact(ctx, id)
	}
	return store.EntityImpact{}, sql.ErrNoRows
}

func (f *fakeStore) InsertEntityImpact(ctx context.Context, e store.EntityImpact) (store.EntityImpact, error) {
	if f.insertEntityImpact != nil {
		return f.insertEntityImpact(ctx, e)
	}
	e.ID = 1
	return e, nil
}

func (f *fakeStore) UpdateEntityImpact(ctx context.Context, id int64, upd store.EntityImpactUpdate) (store.EntityImpact, error) {
	if f.updateEntityImpact != nil {
		return f.updateEntityImpact(ctx, id, upd)
	}
	return store.EntityImpact{}, sql.ErrNoRows
}

func (f *fakeStore) DeleteEntityImpact(ctx context.Context, id int64) (store.EntityImpact, error) {
	if f.deleteEntityImpact != nil {
		return f.deleteEntityImpact(ctx, id)
	}
	return store.EntityImpact{}, sql.ErrNoRows
}
