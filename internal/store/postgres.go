package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// cond accumulates WHERE clauses with positional placeholders.
type cond struct {
	clauses []string
	args    []any
}

func (c *cond) add(clause string, arg any) {
	c.args = append(c.args, arg)
	c.clauses = append(c.clauses, fmt.Sprintf(clause, len(c.args)))
}

func (c *cond) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// addSearch appends a case-insensitive substring match over one or more
// columns, sharing a single placeholder for the pattern.
func (c *cond) addSearch(term string, cols ...string) {
	c.args = append(c.args, "%"+term+"%")
	n := len(c.args)
	if len(cols) == 1 {
		c.clauses = append(c.clauses, fmt.Sprintf("%s ILIKE $%d", cols[0], n))
		return
	}
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, n)
	}
	c.clauses = append(c.clauses, "("+strings.Join(parts, " OR ")+")")
}

// page appends LIMIT/OFFSET placeholders and their args.
func (c *cond) page(limit, offset int) string {
	c.args = append(c.args, limit)
	clause := fmt.Sprintf(" LIMIT $%d", len(c.args))
	c.args = append(c.args, offset)
	clause += fmt.Sprintf(" OFFSET $%d", len(c.args))
	return clause
}

// Tax brackets

const taxBracketCols = `id, year, filing_status, bracket_min, bracket_max, tax_rate, created_at`

func scanTaxBracket(row interface{ Scan(...any) error }) (TaxBracket, error) {
	var b TaxBracket
	err := row.Scan(&b.ID, &b.Year, &b.FilingStatus, &b.BracketMin, &b.BracketMax, &b.TaxRate, &b.CreatedAt)
	return b, err
}

func (s *PostgresStore) ListTaxBrackets(ctx context.Context, q ListQuery) ([]TaxBracket, error) {
	c := &cond{}
	if q.Year != nil {
		c.add("year = $%d", *q.Year)
	}
	if q.FilingStatus != "" {
		c.add("filing_status = $%d", q.FilingStatus)
	}
	query := `SELECT ` + taxBracketCols + ` FROM tax_brackets` + c.where() + ` ORDER BY id` + c.page(q.Limit, q.Offset)
	rows, err := s.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("list tax brackets: %w", err)
	}
	defer rows.Close()
	items := []TaxBracket{}
	for rows.Next() {
		b, err := scanTaxBracket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tax bracket: %w", err)
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func (s *PostgresStore) GetTaxBracket(ctx context.Context, id int64) (TaxBracket, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taxBracketCols+` FROM tax_brackets WHERE id = $1`, id)
	return scanTaxBracket(row)
}

func (s *PostgresStore) InsertTaxBracket(ctx context.Context, b TaxBracket) (TaxBracket, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO tax_brackets (year, filing_status, bracket_min, bracket_max, tax_rate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+taxBracketCols,
		b.Year, b.FilingStatus, b.BracketMin, b.BracketMax, b.TaxRate, b.CreatedAt)
	created, err := scanTaxBracket(row)
	if err != nil {
		return TaxBracket{}, fmt.Errorf("insert tax bracket: %w", err)
	}
	return created, nil
}

// set accumulates SET clauses for a partial update.
type set struct {
	clauses []string
	args    []any
}

func (u *set) add(column string, arg any) {
	u.args = append(u.args, arg)
	u.clauses = append(u.clauses, fmt.Sprintf("%s = $%d", column, len(u.args)))
}

func (u *set) empty() bool { return len(u.clauses) == 0 }

func (u *set) sql(table, cols string) string {
	u.args = append(u.args, nil) // placeholder for id, filled by caller
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(u.clauses, ", "), len(u.args), cols)
}

func (s *PostgresStore) UpdateTaxBracket(ctx context.Context, id int64, upd TaxBracketUpdate) (TaxBracket, error) {
	u := &set{}
	if upd.Year.Set {
		u.add("year", upd.Year.Value)
	}
	if upd.FilingStatus.Set {
		u.add("filing_status", upd.FilingStatus.Value)
	}
	if upd.BracketMin.Set {
		u.add("bracket_min", upd.BracketMin.Value)
	}
	if upd.BracketMax.Set {
		u.add("bracket_max", upd.BracketMax.Value)
	}
	if upd.TaxRate.Set {
		u.add("tax_rate", upd.TaxRate.Value)
	}
	if u.empty() {
		return s.GetTaxBracket(ctx, id)
	}
	query := u.sql("tax_brackets", taxBracketCols)
	u.args[len(u.args)-1] = id
	updated, err := scanTaxBracket(s.db.QueryRowContext(ctx, query, u.args...))
	if err != nil {
		return TaxBracket{}, fmt.Errorf("update tax bracket: %w", err)
	}
	return updated, nil
}

func (s *PostgresStore) DeleteTaxBracket(ctx context.Context, id int64) (TaxBracket, error) {
	row := s.db.QueryRowContext(ctx, `DELETE FROM tax_brackets WHERE id = $1 RETURNING `+taxBracketCols, id)
	deleted, err := scanTaxBracket(row)
	if err != nil {
		return TaxBracket{}, fmt.Errorf("delete tax bracket: %w", err)
	}
	return deleted, nil
}

// Standard deductions

const standardDeductionCols = `id, year, filing_status, amount, created_at`

func scanStandardDeduction(row interface{ Scan(...any) error }) (StandardDeduction, error) {
	var d StandardDeduction
	err := row.Scan(&d.ID, &d.Year, &d.FilingStatus, &d.Amount, &d.CreatedAt)
	return d, err
}

func (s *PostgresStore) ListStandardDeductions(ctx context.Context, q ListQuery) ([]StandardDeduction, error) {
	c := &cond{}
	if q.Year != nil {
		c.add("year = $%d", *q.Year)
	}
	if q.FilingStatus != "" {
		c.add("filing_status = $%d", q.FilingStatus)
	}
	query := `SELECT ` + standardDeductionCols + ` FROM standard_deductions` + c.where() + ` ORDER BY id` + c.page(q.Limit, q.Offset)
	rows, err := s.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("list standard deductions: %w", err)
	}
	defer rows.Close()
	items := []StandardDeduction{}
	for rows.Next() {
		d, err := scanStandardDeduction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan standard deduction: %w", err)
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (s *PostgresStore) GetStandardDeduction(ctx context.Context, id int64) (StandardDeduction, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+standardDeductionCols+` FROM standard_deductions WHERE id = $1`, id)
	return scanStandardDeduction(row)
}

func (s *PostgresStore) InsertStandardDeduction(ctx context.Context, d StandardDeduction) (StandardDeduction, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO standard_deductions (year, filing_status, amount, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING `+standardDeductionCols,
		d.Year, d.FilingStatus, d.Amount, d.CreatedAt)
	created, err := scanStandardDeduction(row)
	if err != nil {
		return StandardDeduction{}, fmt.Errorf("insert standard deduction: %w", err)
	}
	return created, nil
}

func (s *PostgresStore) UpdateStandardDeduction(ctx context.Context, id int64, upd StandardDeductionUpdate) (StandardDeduction, error) {
	u := &set{}
	if upd.Year.Set {
		u.add("year", upd.Year.Value)
	}
	if upd.FilingStatus.Set {
		u.add("filing_status", upd.FilingStatus.Value)
	}
	if upd.Amount.Set {
		u.add("amount", upd.Amount.Value)
	}
	if u.empty() {
		return s.GetStandardDeduction(ctx, id)
	}
	query := u.sql("standard_deductions", standardDeductionCols)
	u.args[len(u.args)-1] = id
	updated, err := scanStandardDeduction(s.db.QueryRowContext(ctx, query, u.args...))
	if err != nil {
		return StandardDeduction{}, fmt.Errorf("update standard deduction: %w", err)
	}
	return updated, nil
}

func (s *PostgresStore) DeleteStandardDeduction(ctx context.Context, id int64) (StandardDeduction, error) {
	row := s.db.QueryRowContext(ctx, `DELETE FROM standard_deductions WHERE id = $1 RETURNING `+standardDeductionCols, id)
	deleted, err := scanStandardDeduction(row)
	if err != nil {
		return StandardDeduction{}, fmt.Errorf("delete standard deduction: %w", err)
	}
	return deleted, nil
}

// Retirement limits

const retirementLimitCols = `id, year, account_type, contribution_limit, catch_up_limit, age_requirement, created_at`

func scanRetirementLimit(row interface{ Scan(...any) error }) (RetirementLimit, error) {
	var l RetirementLimit
	err := row.Scan(&l.ID, &l.Year, &l.AccountType, &l.ContributionLimit, &l.CatchUpLimit, &l.AgeRequirement, &l.CreatedAt)
	return l, err
}

func (s *PostgresStore) ListRetirementLimits(ctx context.Context, q ListQuery) ([]RetirementLimit, error) {
	c := &cond{}
	if q.Year != nil {
		c.add("year = $%d", *q.Year)
	}
	if q.AccountType != "" {
		c.add("account_type = $%d", q.AccountType)
	}
	query := `SELECT ` + retirementLimitCols + ` FROM retirement_limits` + c.where() + ` ORDER BY id` + c.page(q.Limit, q.Offset)
	rows, err := s.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("list retirement limits: %w", err)
	}
	defer rows.Close()
	items := []RetirementLimit{}
	for rows.Next() {
		l, err := scanRetirementLimit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan retirement limit: %w", err)
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

func (s *PostgresStore) GetRetirementLimit(ctx context.Context, id int64) (RetirementLimit, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+retirementLimitCols+` FROM retirement_limits WHERE id = $1`, id)
	return scanRetirementLimit(row)
}

func (s *PostgresStore) InsertRetirementLimit(ctx context.Context, l RetirementLimit) (RetirementLimit, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO retirement_limits (year, account_type, contribution_limit, catch_up_limit, age_requirement, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+retirementLimitCols,
		l.Year, l.AccountType, l.ContributionLimit, l.CatchUpLimit, l.AgeRequirement, l.CreatedAt)
	created, err := scanRetirementLimit(row)
	if err != nil {
		return RetirementLimit{}, fmt.Errorf("insert retirement limit: %w", err)
	}
	return created, nil
}

func (s *PostgresStore) UpdateRetirementLimit(ctx context.Context, id int64, upd RetirementLimitUpdate) (RetirementLimit, error) {
	u := &set{}
	if upd.Year.Set {
		u.add("year", upd.Year.Value)
	}
	if upd.AccountType.Set {
		u.add("account_type", upd.AccountType.Value)
	}
	if upd.ContributionLimit.Set {
		u.add("contribution_limit", upd.ContributionLimit.Value)
	}
	if upd.CatchUpLimit.Set {
		u.add("catch_up_limit", upd.CatchUpLimit.Value)
	}
	if upd.AgeRequirement.Set {
		u.add("age_requirement", upd.AgeRequirement.Value)
	}
	if u.empty() {
		return s.GetRetirementLimit(ctx, id)
	}
	query := u.sql("retirement_limits", retirementLimitCols)
	u.args[len(u.args)-1] = id
	updated, err := scanRetirementLimit(s.db.QueryRowContext(ctx, query, u.args...))
	if err != nil {
		return RetirementLimit{}, fmt.Errorf("update retirement limit: %w", err)
	}
	return updated, nil
}

func (s *PostgresStore) DeleteRetirementLimit(ctx context.Context, id int64) (RetirementLimit, error) {
	row := s.db.QueryRowContext(ctx, `DELETE FROM retirement_limits WHERE id = $1 RETURNING `+retirementLimitCols, id)
	deleted, err := scanRetirementLimit(row)
	if err != nil {
		return RetirementLimit{}, fmt.Errorf("delete retirement limit: %w", err)
	}
	return deleted, nil
}

// SALT deduction history

const saltDeductionCols = `id, year, filing_status, deduction_cap, phaseout_threshold, created_at`

func scanSaltDeduction(row interface{ Scan(...any) error }) (SaltDeduction, error) {
	var d SaltDeduction
	err := row.Scan(&d.ID, &d.Year, &d.FilingStatus, &d.DeductionCap, &d.PhaseoutThreshold, &d.CreatedAt)
	return d, err
}

func (s *PostgresStore) ListSaltDeductions(ctx context.Context, q ListQuery) ([]SaltDeduction, error) {
	c := &cond{}
	if q.Year != nil {
		c.add("year = $%d", *q.Year)
	}
	if q.FilingStatus != "" {
		c.add("filing_status = $%d", q.FilingStatus)
	}
	query := `SELECT ` + saltDeductionCols + ` FROM salt_deduction_history` + c.where() + ` ORDER BY id` + c.page(q.Limit, q.Offset)
	rows, err := s.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("list salt deductions: %w", err)
	}
	defer rows.Close()
	items := []SaltDeduction{}
	for rows.Next() {
		d, err := scanSaltDeduction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan salt deduction: %w", err)
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (s *PostgresStore) GetSaltDeduction(ctx context.Context, id int64) (SaltDeduction, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+saltDeductionCols+` FROM salt_deduction_history WHERE id = $1`, id)
	return scanSaltDeduction(row)
}

func (s *PostgresStore) InsertSaltDeduction(ctx context.Context, d SaltDeduction) (SaltDeduction, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO salt_deduction_history (year, filing_status, deduction_cap, phaseout_threshold, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+saltDeductionCols,
		d.Year, d.FilingStatus, d.DeductionCap, d.PhaseoutThreshold, d.CreatedAt)
	created, err := scanSaltDeduction(row)
	if err != nil {
		return SaltDeduction{}, fmt.Errorf("insert salt deduction: %w", err)
	}
	return created, nil
}

func (s *PostgresStore) UpdateSaltDeduction(ctx context.Context, id int64, upd SaltDeductionUpdate) (SaltDeduction, error) {
	u := &set{}
	if upd.Year.Set {
		u.add("year", upd.Year.Value)
	}
	if upd.FilingStatus.Set {
		u.add("filing_status", upd.FilingStatus.Value)
	}
	if upd.DeductionCap.Set {
		u.add("deduction_cap", upd.DeductionCap.Value)
	}
	if upd.PhaseoutThreshold.Set {
		u.add("phaseout_threshold", upd.PhaseoutThreshold.Value)
	}
	if u.empty() {
		return s.GetSaltDeduction(ctx, id)
	}
	query := u.sql("salt_deduction_history", saltDeductionCols)
	u.args[len(u.args)-1] = id
	updated, err := scanSaltDeduction(s.db.QueryRowContext(ctx, query, u.args...))
	if err != nil {
		return SaltDeduction{}, fmt.Errorf("update salt deduction: %w", err)
	}
	return updated, nil
}

func (s *PostgresStore) DeleteSaltDeduction(ctx context.Context, id int64) (SaltDeduction, error) {
	row := s.db.QueryRowContext(ctx, `DELETE FROM salt_deduction_history WHERE id = $1 RETURNING `+saltDeductionCols, id)
	deleted, err := scanSaltDeduction(row)
	if err != nil {
		return SaltDeduction{}, fmt.Errorf("delete salt deduction: %w", err)
	}
	return deleted, nil
}

// New provisions

const provisionCols = `id, provision_name, description, effective_date, expiration_date, public_law_citation, irc_section, is_temporary, created_at`

func scanProvision(row interface{ Scan(...any) error }) (Provision, error) {
	var p Provision
	var isTemp int
	err := row.Scan(&p.ID, &p.ProvisionName, &p.Description, &p.EffectiveDate, &p.ExpirationDate, &p.PublicLawCitation, &p.IRCSection, &isTemp, &p.CreatedAt)
	p.IsTemporary = isTemp != 0
	return p, err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (s *PostgresStore) ListProvisions(ctx context.Context, q ListQuery) ([]Provision, error) {
	c := &cond{}
	if q.IsTemporary != nil {
		c.add("is_temporary = $%d", boolToInt(*q.IsTemporary))
	}
	if q.Search != "" {
		c.addSearch(q.Search, "provision_name")
	}
	query := `SELECT ` + provisionCols + ` FROM new_2025_provisions` + c.where() + ` ORDER BY created_at DESC` + c.page(q.Limit, q.Offset)
	rows, err := s.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("list provisions: %w", err)
	}
	defer rows.Close()
	items := []Provision{}
	for rows.Next() {
		p, err := scanProvision(rows)
		if err != nil {
			return nil, fmt.Errorf("scan provision: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (s *PostgresStore) GetProvision(ctx context.Context, id int64) (Provision, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+provisionCols+` FROM new_2025_provisions WHERE id = $1`, id)
	return scanProvision(row)
}

func (s *PostgresStore) InsertProvision(ctx context.Context, p Provision) (Provision, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO new_2025_provisions (provision_name, description, effective_date, expiration_date, public_law_citation, irc_section, is_temporary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+provisionCols,
		p.ProvisionName, p.Description, p.EffectiveDate, p.ExpirationDate, p.PublicLawCitation, p.IRCSection, boolToInt(p.IsTemporary), p.CreatedAt)
	created, err := scanProvision(row)
	if err != nil {
		return Provision{}, fmt.Errorf("insert provision: %w", err)
	}
	return created, nil
}

func (s *PostgresStore) UpdateProvision(ctx context.Context, id int64, upd ProvisionUpdate) (Provision, error) {
	u := &set{}
	if upd.ProvisionName.Set {
		u.add("provision_name", upd.ProvisionName.Value)
	}
	if upd.Description.Set {
		u.add("description", upd.Description.Value)
	}
	if upd.EffectiveDate.Set {
		u.add("effective_date", upd.EffectiveDate.Value)
	}
	if upd.ExpirationDate.Set {
		u.add("expiration_date", upd.ExpirationDate.Value)
	}
	if upd.PublicLawCitation.Set {
		u.add("public_law_citation", upd.PublicLawCitation.Value)
	}
	if upd.IRCSection.Set {
		u.add("irc_section", upd.IRCSection.Value)
	}
	if upd.IsTemporary.Set {
		u.add("is_temporary", boolToInt(upd.IsTemporary.Value))
	}
	if u.empty() {
		return s.GetProvision(ctx, id)
	}
	query := u.sql("new_2025_provisions", provisionCols)
	u.args[len(u.args)-1] = id
	updated, err := scanProvision(s.db.QueryRowContext(ctx, query, u.args...))
	if err != nil {
		return Provision{}, fmt.Errorf("update provision: %w", err)
	}
	return updated, nil
}

func (s *PostgresStore) DeleteProvision(ctx context.Context, id int64) (Provision, error) {
	row := s.db.QueryRowContext(ctx, `DELETE FROM new_2025_provisions WHERE id = $1 RETURNING `+provisionCols, id)
	deleted, err := scanProvision(row)
	if err != nil {
		return Provision{}, fmt.Errorf("delete provision: %w", err)
	}
	return deleted, nil
}

// Government references

const governmentReferenceCols = `id, category, title, citation_number, url, published_date, description, created_at`

func scanGovernmentReference(row interface{ Scan(...any) error }) (GovernmentReference, error) {
	var g GovernmentReference
	err := row.Scan(&g.ID, &g.Category, &g.Title, &g.CitationNumber, &g.URL, &g.PublishedDate, &g.Description, &g.CreatedAt)
	return g, err
}

func (s *PostgresStore) ListGovernmentReferences(ctx context.Context, q ListQuery) ([]GovernmentReference, error) {
	c := &cond{}
	if q.Category != "" {
		c.add("category = $%d", q.Category)
	}
	if q.Search != "" {
		c.addSearch(q.Search, "title", "citation_number")
	}
	query := `SELECT ` + governmentReferenceCols + ` FROM government_references` + c.where() + ` ORDER BY created_at DESC` + c.page(q.Limit, q.Offset)
	rows, err := s.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("list government references: %w", err)
	}
	defer rows.Close()
	items := []GovernmentReference{}
	for rows.Next() {
		g, err := scanGovernmentReference(rows)
		if err != nil {
			return nil, fmt.Errorf("scan government reference: %w", err)
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

func (s *PostgresStore) GetGovernmentReference(ctx context.Context, id int64) (GovernmentReference, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+governmentReferenceCols+` FROM government_references WHERE id = $1`, id)
	return scanGovernmentReference(row)
}

func (s *PostgresStore) InsertGovernmentReference(ctx context.Context, g GovernmentReference) (GovernmentReference, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO government_references (category, title, citation_number, url, published_date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+governmentReferenceCols,
		g.Category, g.Title, g.CitationNumber, g.URL, g.PublishedDate, g.Description, g.CreatedAt)
	created, err := scanGovernmentReference(row)
	if err != nil {
		return GovernmentReference{}, fmt.Errorf("insert government reference: %w", err)
	}
	return created, nil
}

func (s *PostgresStore) UpdateGovernmentReference(ctx context.Context, id int64, upd GovernmentReferenceUpdate) (GovernmentReference, error) {
	u := &set{}
	if upd.Category.Set {
		u.add("category", upd.Category.Value)
	}
	if upd.Title.Set {
		u.add("title", upd.Title.Value)
	}
	if upd.CitationNumber.Set {
		u.add("citation_number", upd.CitationNumber.Value)
	}
	if upd.URL.Set {
		u.add("url", upd.URL.Value)
	}
	if upd.PublishedDate.Set {
		u.add("published_date", upd.PublishedDate.Value)
	}
	if upd.Description.Set {
		u.add("description", upd.Description.Value)
	}
	if u.empty() {
		return s.GetGovernmentReference(ctx, id)
	}
	query := u.sql("government_references", governmentReferenceCols)
	u.args[len(u.args)-1] = id
	updated, err := scanGovernmentReference(s.db.QueryRowContext(ctx, query, u.args...))
	if err != nil {
		return GovernmentReference{}, fmt.Errorf("update government reference: %w", err)
	}
	return updated, nil
}

func (s *PostgresStore) DeleteGovernmentReference(ctx context.Context, id int64) (GovernmentReference, error) {
	row := s.db.QueryRowContext(ctx, `DELETE FROM government_references WHERE id = $1 RETURNING `+governmentReferenceCols, id)
	deleted, err := scanGovernmentReference(row)
	if err != nil {
		return GovernmentReference{}, fmt.Errorf("delete government reference: %w", err)
	}
	return deleted, nil
}

// Entity tax impacts

const entityImpactCols = `id, entity_type, provision_name, impact_description, potential_savings, year, created_at`

func scanEntityImpact(row interface{ Scan(...any) error }) (EntityImpact, error) {
	var e EntityImpact
	err := row.Scan(&e.ID, &e.EntityType, &e.ProvisionName, &e.ImpactDescription, &e.PotentialSavings, &e.Year, &e.CreatedAt)
	return e, err
}

func (s *PostgresStore) ListEntityImpacts(ctx context.Context, q ListQuery) ([]EntityImpact, error) {
	c := &cond{}
	if q.Search != "" {
		c.addSearch(q.Search, "provision_name")
	}
	if q.EntityType != "" {
		c.add("entity_type = $%d", q.EntityType)
	}
	if q.Year != nil {
		c.add("year = $%d", *q.Year)
	}
	query := `SELECT ` + entityImpactCols + ` FROM entity_tax_impacts` + c.where() + ` ORDER BY id` + c.page(q.Limit, q.Offset)
	rows, err := s.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("list entity impacts: %w", err)
	}
	defer rows.Close()
	items := []EntityImpact{}
	for rows.Next() {
		e, err := scanEntityImpact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entity impact: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (s *PostgresStore) GetEntityImpact(ctx context.Context, id int64) (EntityImpact, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entityImpactCols+` FROM entity_tax_impacts WHERE id = $1`, id)
	return scanEntityImpact(row)
}

func (s *PostgresStore) InsertEntityImpact(ctx context.Context, e EntityImpact) (EntityImpact, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO entity_tax_impacts (entity_type, provision_name, impact_description, potential_savings, year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+entityImpactCols,
		e.EntityType, e.ProvisionName, e.ImpactDescription, e.PotentialSavings, e.Year, e.CreatedAt)
	created, err := scanEntityImpact(row)
	if err != nil {
		return EntityImpact{}, fmt.Errorf("insert entity impact: %w", err)
	}
	return created, nil
}

func (s *PostgresStore) UpdateEntityImpact(ctx context.Context, id int64, upd EntityImpactUpdate) (EntityImpact, error) {
	u := &set{}
	if upd.EntityType.Set {
		u.add("entity_type", upd.EntityType.Value)
	}
	if upd.ProvisionName.Set {
		u.add("provision_name", upd.ProvisionName.Value)
	}
	if upd.ImpactDescription.Set {
		u.add("impact_description", upd.ImpactDescription.Value)
	}
	if upd.PotentialSavings.Set {
		u.add("potential_savings", upd.PotentialSavings.Value)
	}
	if upd.Year.Set {
		u.add("year", upd.Year.Value)
	}
	if u.empty() {
		return s.GetEntityImpact(ctx, id)
	}
	query := u.sql("entity_tax_impacts", entityImpactCols)
	u.args[len(u.args)-1] = id
	updated, err := scanEntityImpact(s.db.QueryRowContext(ctx, query, u.args...))
	if err != nil {
		return EntityImpact{}, fmt.Errorf("update entity impact: %w", err)
	}
	return updated, nil
}

func (s *PostgresStore) DeleteEntityImpact(ctx context.Context, id int64) (EntityImpact, error) {
	row := s.db.QueryRowContext(ctx, `DELETE FROM entity_tax_impacts WHERE id = $1 RETURNING `+entityImpactCols, id)
	deleted, err := scanEntityImpact(row)
	if err != nil {
		return EntityImpact{}, fmt.Errorf("delete entity impact: %w", err)
	}
	return deleted, nil
}

// Comparison runs the eight fixed-year lookups behind the comparison endpoint.
func (s *PostgresStore) Comparison(ctx context.Context) (ComparisonData, error) {
	data := ComparisonData{
		TaxBrackets:        map[int][]TaxBracket{},
		StandardDeductions: map[int][]StandardDeduction{},
		RetirementLimits:   map[int][]RetirementLimit{},
		SaltDeductions:     map[int][]SaltDeduction{},
	}

	for _, year := range []int{2024, 2025} {
		y := year
		q := ListQuery{Limit: 1000, Year: &y}

		brackets, err := s.ListTaxBrackets(ctx, q)
		if err != nil {
			return ComparisonData{}, err
		}
		data.TaxBrackets[year] = brackets

		deductions, err := s.ListStandardDeductions(ctx, q)
		if err != nil {
			return ComparisonData{}, err
		}
		data.StandardDeductions[year] = deductions

		limits, err := s.ListRetirementLimits(ctx, q)
		if err != nil {
			return ComparisonData{}, err
		}
		data.RetirementLimits[year] = limits

		salt, err := s.ListSaltDeductions(ctx, q)
		if err != nil {
			return ComparisonData{}, err
		}
		data.SaltDeductions[year] = salt
	}

	accountTypes := map[string]struct{}{}
	for _, l := range data.RetirementLimits[2025] {
		accountTypes[l.AccountType] = struct{}{}
	}
	data.Summary = ComparisonSummary{
		TotalBrackets2024:          len(data.TaxBrackets[2024]),
		TotalBrackets2025:          len(data.TaxBrackets[2025]),
		RetirementAccountTypes2025: len(accountTypes),
	}
	return data, nil
}
