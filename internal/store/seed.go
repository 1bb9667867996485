package store

import (
	"context"
	"fmt"
	"time"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

// EnsureSeedData populates any empty table with the reference data the guide
// ships with. Tables that already hold rows are left alone, so reseeding a
// live database is safe.
func (s *PostgresStore) EnsureSeedData(ctx context.Context) error {
	now := time.Now().UTC().Format(time.RFC3339)

	if err := s.seedTaxBrackets(ctx, now); err != nil {
		return err
	}
	if err := s.seedStandardDeductions(ctx, now); err != nil {
		return err
	}
	if err := s.seedRetirementLimits(ctx, now); err != nil {
		return err
	}
	if err := s.seedSaltDeductions(ctx, now); err != nil {
		return err
	}
	if err := s.seedProvisions(ctx, now); err != nil {
		return err
	}
	if err := s.seedGovernmentReferences(ctx, now); err != nil {
		return err
	}
	return s.seedEntityImpacts(ctx, now)
}

func (s *PostgresStore) tableEmpty(ctx context.Context, table string) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return n == 0, nil
}

func (s *PostgresStore) seedTaxBrackets(ctx context.Context, now string) error {
	empty, err := s.tableEmpty(ctx, "tax_brackets")
	if err != nil || !empty {
		return err
	}
	rows := []TaxBracket{
		{Year: 2024, FilingStatus: "Single", BracketMin: 0, BracketMax: intPtr(11600), TaxRate: 0.10},
		{Year: 2024, FilingStatus: "Single", BracketMin: 11601, BracketMax: intPtr(47150), TaxRate: 0.12},
		{Year: 2024, FilingStatus: "Single", BracketMin: 47151, BracketMax: intPtr(100525), TaxRate: 0.22},
		{Year: 2024, FilingStatus: "Single", BracketMin: 100526, BracketMax: intPtr(191950), TaxRate: 0.24},
		{Year: 2024, FilingStatus: "Single", BracketMin: 191951, BracketMax: intPtr(243725), TaxRate: 0.32},
		{Year: 2024, FilingStatus: "Single", BracketMin: 243726, BracketMax: intPtr(609350), TaxRate: 0.35},
		{Year: 2024, FilingStatus: "Single", BracketMin: 609351, BracketMax: nil, TaxRate: 0.37},
		{Year: 2025, FilingStatus: "Single", BracketMin: 0, BracketMax: intPtr(11925), TaxRate: 0.10},
		{Year: 2025, FilingStatus: "Single", BracketMin: 11926, BracketMax: intPtr(48475), TaxRate: 0.12},
		{Year: 2025, FilingStatus: "Single", BracketMin: 48476, BracketMax: intPtr(103350), TaxRate: 0.22},
		{Year: 2025, FilingStatus: "Single", BracketMin: 103351, BracketMax: intPtr(197300), TaxRate: 0.24},
		{Year: 2025, FilingStatus: "Single", BracketMin: 197301, BracketMax: intPtr(250525), TaxRate: 0.32},
		{Year: 2025, FilingStatus: "Single", BracketMin: 250526, BracketMax: intPtr(626350), TaxRate: 0.35},
		{Year: 2025, FilingStatus: "Single", BracketMin: 626351, BracketMax: nil, TaxRate: 0.37},
	}
	for _, r := range rows {
		r.CreatedAt = now
		if _, err := s.InsertTaxBracket(ctx, r); err != nil {
			return fmt.Errorf("seed tax brackets: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) seedStandardDeductions(ctx context.Context, now string) error {
	empty, err := s.tableEmpty(ctx, "standard_deductions")
	if err != nil || !empty {
		return err
	}
	rows := []StandardDeduction{
		{Year: 2024, FilingStatus: "Single", Amount: 14600},
		{Year: 2024, FilingStatus: "Married Filing Jointly", Amount: 29200},
		{Year: 2024, FilingStatus: "Head of Household", Amount: 21900},
		{Year: 2024, FilingStatus: "Married Filing Separately", Amount: 14600},
		{Year: 2025, FilingStatus: "Single", Amount: 15750},
		{Year: 2025, FilingStatus: "Married Filing Jointly", Amount: 31500},
		{Year: 2025, FilingStatus: "Head of Household", Amount: 23625},
		{Year: 2025, FilingStatus: "Married Filing Separately", Amount: 15750},
	}
	for _, r := range rows {
		r.CreatedAt = now
		if _, err := s.InsertStandardDeduction(ctx, r); err != nil {
			return fmt.Errorf("seed standard deductions: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) seedRetirementLimits(ctx context.Context, now string) error {
	empty, err := s.tableEmpty(ctx, "retirement_limits")
	if err != nil || !empty {
		return err
	}
	rows := []RetirementLimit{
		{Year: 2024, AccountType: "401k", ContributionLimit: 23000, CatchUpLimit: intPtr(7500), AgeRequirement: intPtr(50)},
		{Year: 2024, AccountType: "IRA", ContributionLimit: 7000, CatchUpLimit: intPtr(1000), AgeRequirement: intPtr(50)},
		{Year: 2024, AccountType: "SIMPLE IRA", ContributionLimit: 16000, CatchUpLimit: intPtr(3500), AgeRequirement: intPtr(50)},
		{Year: 2024, AccountType: "SEP IRA", ContributionLimit: 69000},
		{Year: 2025, AccountType: "401k", ContributionLimit: 23500, CatchUpLimit: intPtr(7500), AgeRequirement: intPtr(50)},
		{Year: 2025, AccountType: "IRA", ContributionLimit: 7000, CatchUpLimit: intPtr(1000), AgeRequirement: intPtr(50)},
		{Year: 2025, AccountType: "SIMPLE IRA", ContributionLimit: 16500, CatchUpLimit: intPtr(3500), AgeRequirement: intPtr(50)},
		{Year: 2025, AccountType: "SEP IRA", ContributionLimit: 70000},
		{Year: 2025, AccountType: "401k Special Catch-up", ContributionLimit: 23500, CatchUpLimit: intPtr(11250), AgeRequirement: intPtr(60)},
	}
	for _, r := range rows {
		r.CreatedAt = now
		if _, err := s.InsertRetirementLimit(ctx, r); err != nil {
			return fmt.Errorf("seed retirement limits: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) seedSaltDeductions(ctx context.Context, now string) error {
	empty, err := s.tableEmpty(ctx, "salt_deduction_history")
	if err != nil || !empty {
		return err
	}
	rows := []SaltDeduction{
		{Year: 2024, FilingStatus: "Single", DeductionCap: 10000},
		{Year: 2024, FilingStatus: "Married Filing Jointly", DeductionCap: 10000},
		{Year: 2024, FilingStatus: "Married Filing Separately", DeductionCap: 5000},
		{Year: 2025, FilingStatus: "Single", DeductionCap: 40000, PhaseoutThreshold: intPtr(500000)},
		{Year: 2025, FilingStatus: "Married Filing Jointly", DeductionCap: 40000, PhaseoutThreshold: intPtr(500000)},
		{Year: 2025, FilingStatus: "Married Filing Separately", DeductionCap: 20000, PhaseoutThreshold: intPtr(250000)},
	}
	for _, r := range rows {
		r.CreatedAt = now
		if _, err := s.InsertSaltDeduction(ctx, r); err != nil {
			return fmt.Errorf("seed salt deductions: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) seedProvisions(ctx context.Context, now string) error {
	empty, err := s.tableEmpty(ctx, "new_2025_provisions")
	if err != nil || !empty {
		return err
	}
	rows := []Provision{
		{
			ProvisionName:     "Qualified Tip Income Deduction",
			Description:       "Allows deduction for tip income received by employees in service industries. Deduction claimed on Schedule 1-A.",
			EffectiveDate:     "2025-01-01",
			ExpirationDate:    strPtr("2028-12-31"),
			PublicLawCitation: "P.L. 119-21",
			IRCSection:        "IRC §163",
			IsTemporary:       true,
		},
		{
			ProvisionName:     "Qualified Overtime Pay Deduction",
			Description:       "Allows deduction for overtime compensation earned by employees. Applies to overtime pay exceeding standard 40-hour workweek. Deduction claimed on Schedule 1-A.",
			EffectiveDate:     "2025-01-01",
			ExpirationDate:    strPtr("2028-12-31"),
			PublicLawCitation: "P.L. 119-21",
			IRCSection:        "Schedule 1-A",
			IsTemporary:       true,
		},
		{
			ProvisionName:     "Qualified Passenger Vehicle Loan Interest Deduction",
			Description:       "Personal auto loan interest deduction for loans on US-assembled vehicles. Must meet domestic assembly requirements and vehicle price limits.",
			EffectiveDate:     "2025-01-01",
			ExpirationDate:    strPtr("2028-12-31"),
			PublicLawCitation: "P.L. 119-21",
			IRCSection:        "IRC §163(h)(4), §6050AA",
			IsTemporary:       true,
		},
		{
			ProvisionName:     "Enhanced Senior Deduction",
			Description:       "Increased standard deduction for taxpayers age 65 and older, subject to modified adjusted gross income phase-out thresholds. Additional deduction amount phases out for higher-income seniors.",
			EffectiveDate:     "2025-01-01",
			ExpirationDate:    strPtr("2028-12-31"),
			PublicLawCitation: "P.L. 119-21",
			IRCSection:        "Schedule 1-A",
			IsTemporary:       true,
		},
		{
			ProvisionName:     "Section 179 Expansion",
			Description:       "Section 179 deduction limit increased to $2,500,000 (up from $1,220,000), with phase-out beginning at $4,000,000 in equipment purchases. Permanent expansion effective for tax years beginning after December 31, 2024.",
			EffectiveDate:     "2025-01-01",
			PublicLawCitation: "P.L. 119-21, Section 70321",
			IRCSection:        "IRC §179",
		},
		{
			ProvisionName:     "100% Bonus Depreciation Restoration",
			Description:       "Permanent 100% bonus depreciation for qualified property placed in service after January 19, 2025. Restores full expensing for eligible business property acquisitions.",
			EffectiveDate:     "2025-01-19",
			PublicLawCitation: "P.L. 119-21, Section 70322",
			IRCSection:        "IRC §168(k)",
		},
		{
			ProvisionName:     "QBI Deduction Made Permanent",
			Description:       "20% qualified business income deduction for pass-through entities made permanent. Applies to sole proprietors, S corporations, partnerships, and LLCs taxed as pass-throughs. Subject to income limitations and specified service trade or business rules.",
			EffectiveDate:     "2025-01-01",
			PublicLawCitation: "P.L. 119-21, Section 70105",
			IRCSection:        "IRC §199A",
		},
		{
			ProvisionName:     "R&D Deduction Permanent Restoration",
			Description:       "Immediate expensing of research and development costs restored permanently. Eliminates mandatory 5-year amortization requirement, allowing businesses to deduct R&D expenditures in the year incurred.",
			EffectiveDate:     "2025-01-01",
			PublicLawCitation: "P.L. 119-21, Section 70302",
			IRCSection:        "IRC §174",
		},
		{
			ProvisionName:     "TCJA Provisions Permanent",
			Description:       "Individual tax rates, doubled standard deduction, increased child tax credit, and other Tax Cuts and Jobs Act provisions made permanent. Removes 2025 sunset date for individual tax provisions.",
			EffectiveDate:     "2025-01-01",
			PublicLawCitation: "P.L. 119-21",
			IRCSection:        "Various IRC sections",
		},
	}
	for _, r := range rows {
		r.CreatedAt = now
		if _, err := s.InsertProvision(ctx, r); err != nil {
			return fmt.Errorf("seed provisions: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) seedGovernmentReferences(ctx context.Context, now string) error {
	empty, err := s.tableEmpty(ctx, "government_references")
	if err != nil || !empty {
		return err
	}
	rows := []GovernmentReference{
		{
			Category:       "IRS Notice",
			Title:          "2025 Retirement Plan Contribution Limits",
			CitationNumber: "Notice 2024-80",
			URL:            "https://www.irs.gov/pub/irs-drop/n-24-80.pdf",
			PublishedDate:  "2024-11-01",
			Description:    "Annual inflation adjustments for retirement plan contribution limits including 401(k), IRA, SIMPLE IRA, and SEP IRA plans for tax year 2025.",
		},
		{
			Category:       "Revenue Procedure",
			Title:          "2026 Tax Year Inflation Adjustments",
			CitationNumber: "Rev. Proc. 2025-32",
			URL:            "https://www.irs.gov/pub/irs-drop/rp-25-32.pdf",
			PublishedDate:  "2025-10-09",
			Description:    "Comprehensive inflation adjustments for more than 60 tax provisions affecting individual and business taxpayers for tax year 2026.",
		},
		{
			Category:       "IRS Notice",
			Title:          "Car Loan Interest Reporting Guidance",
			CitationNumber: "Notice 2025-57",
			URL:            "https://www.irs.gov/pub/irs-drop/n-25-57.pdf",
			PublishedDate:  "2025-10-21",
			Description:    "Transitional guidance for lenders and taxpayers regarding IRC §6050AA reporting requirements for qualified passenger vehicle loan interest deductions.",
		},
		{
			Category:       "Public Law",
			Title:          "One Big Beautiful Bill Act",
			CitationNumber: "P.L. 119-21",
			URL:            "https://www.congress.gov/119/plaws/publ21/PLAW-119publ21.pdf",
			PublishedDate:  "2025-07-04",
			Description:    "Major 2025 tax legislation containing permanent and temporary tax provisions including Section 179 expansion, bonus depreciation restoration, QBI deduction permanence, and new individual deductions.",
		},
		{
			Category:       "IRS Publication",
			Title:          "Employer's Tax Guide (2025)",
			CitationNumber: "Publication 15",
			URL:            "https://www.irs.gov/publications/p15",
			PublishedDate:  "2025-01-01",
			Description:    "Comprehensive guide for employers covering Social Security and Medicare tax rates, federal income tax withholding, and employment tax reporting requirements.",
		},
		{
			Category:       "IRS Publication",
			Title:          "Tax Withholding and Estimated Tax (2025)",
			CitationNumber: "Publication 505",
			URL:            "https://www.irs.gov/publications/p505",
			PublishedDate:  "2025-01-01",
			Description:    "Guidance on tax withholding from wages, pensions, and other income, as well as estimated tax payment requirements for self-employed individuals and other taxpayers.",
		},
		{
			Category:       "Federal Website",
			Title:          "IRS Tax Brackets and Rates",
			CitationNumber: "IRS.gov",
			URL:            "https://www.irs.gov/filing/federal-income-tax-rates-and-brackets",
			PublishedDate:  "2024-01-01",
			Description:    "Official federal income tax bracket information updated annually, showing marginal tax rates for all filing statuses and income levels.",
		},
		{
			Category:       "Federal Website",
			Title:          "SSA 2025 COLA Fact Sheet",
			CitationNumber: "SSA Fact Sheet",
			URL:            "https://www.ssa.gov/news/press/factsheets/colafacts2025.pdf",
			PublishedDate:  "2024-10-10",
			Description:    "Social Security Administration announcement of 2025 cost-of-living adjustments, Social Security wage base limits, and benefit calculation thresholds.",
		},
		{
			Category:       "Treasury Guidance",
			Title:          "OBBBA Implementation",
			CitationNumber: "Treasury Guidance 2025-1",
			URL:            "https://home.treasury.gov/",
			PublishedDate:  "2025-07-04",
			Description:    "Department of Treasury implementation guidance for the One Big Beautiful Bill Act, including regulatory timelines and taxpayer compliance requirements.",
		},
		{
			Category:       "Revenue Procedure",
			Title:          "Rev. Proc. 2025-28",
			CitationNumber: "Rev. Proc. 2025-28",
			URL:            "https://www.irs.gov/irb/2025-38_IRB",
			PublishedDate:  "2025-09-15",
			Description:    "Procedures for making elections and method changes related to research and development expenditure deductions under restored IRC §174 immediate expensing rules.",
		},
	}
	for _, r := range rows {
		r.CreatedAt = now
		if _, err := s.InsertGovernmentReference(ctx, r); err != nil {
			return fmt.Errorf("seed government references: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) seedEntityImpacts(ctx context.Context, now string) error {
	empty, err := s.tableEmpty(ctx, "entity_tax_impacts")
	if err != nil || !empty {
		return err
	}
	rows := []EntityImpact{
		{EntityType: "C-Corp", ProvisionName: "Section 179 Expansion", ImpactDescription: "C-Corporations can deduct up to $2,500,000 in equipment purchases (up from $1,220,000) with immediate write-off capability. Phase-out begins at $4,000,000 in annual equipment purchases.", PotentialSavings: "$300,000+ in first-year tax savings", Year: 2025},
		{EntityType: "C-Corp", ProvisionName: "100% Bonus Depreciation", ImpactDescription: "Immediate 100% write-off for qualifying property placed in service after 1/19/2025, providing significant cash flow benefits for capital-intensive businesses.", PotentialSavings: "$500,000+ depending on purchases", Year: 2025},
		{EntityType: "C-Corp", ProvisionName: "R&D Deduction Restoration", ImpactDescription: "Immediate deduction for research and development costs instead of mandatory 5-year amortization, improving cash flow for technology and innovation-focused corporations.", PotentialSavings: "$100,000+ annually", Year: 2025},
		{EntityType: "S-Corp", ProvisionName: "QBI Deduction Permanent", ImpactDescription: "20% qualified business income deduction for pass-through entities made permanent, providing long-term tax planning certainty for S-Corporation shareholders.", PotentialSavings: "$40,000 per $200,000 of QBI", Year: 2025},
		{EntityType: "S-Corp", ProvisionName: "Section 179 Expansion", ImpactDescription: "$2,500,000 immediate equipment deduction available to S-Corporations, significantly higher than previous $1,220,000 limit.", PotentialSavings: "$300,000+ in first-year savings", Year: 2025},
		{EntityType: "S-Corp", ProvisionName: "Tip Income Deduction", ImpactDescription: "Service businesses structured as S-Corporations can deduct tip income paid to employees. Temporary provision applies 2025-2028.", PotentialSavings: "$5,000-$50,000 annually", Year: 2025},
		{EntityType: "Partnership", ProvisionName: "QBI Deduction Permanent", ImpactDescription: "Partners eligible for 20% qualified business income deduction on their distributive share of partnership income. Permanent tax benefit provides planning certainty.", PotentialSavings: "$40,000 per $200,000 of QBI per partner", Year: 2025},
		{EntityType: "Partnership", ProvisionName: "Section 179 Expansion", ImpactDescription: "Partnerships can elect $2,500,000 Section 179 deduction for equipment and qualifying property at the partnership level.", PotentialSavings: "$300,000+ in first-year savings", Year: 2025},
		{EntityType: "Partnership", ProvisionName: "100% Bonus Depreciation", ImpactDescription: "Full expensing available for qualifying partnership property placed in service after 1/19/2025, improving partner basis and cash distributions.", PotentialSavings: "$500,000+ depending on asset purchases", Year: 2025},
		{EntityType: "LLC", ProvisionName: "QBI Deduction Permanent", ImpactDescription: "LLCs taxed as partnerships or S-Corporations receive permanent 20% qualified business income deduction for members/shareholders.", PotentialSavings: "$40,000 per $200,000 of QBI", Year: 2025},
		{EntityType: "LLC", ProvisionName: "Section 179 Expansion", ImpactDescription: "LLCs can deduct $2,500,000 in equipment and qualifying property immediately, up from prior $1,220,000 limit.", PotentialSavings: "$300,000+ in first-year savings", Year: 2025},
		{EntityType: "LLC", ProvisionName: "Overtime Pay Deduction", ImpactDescription: "LLCs with employees can deduct overtime compensation paid. Temporary provision applies 2025-2028.", PotentialSavings: "$10,000-$100,000 annually", Year: 2025},
		{EntityType: "Sole Proprietor", ProvisionName: "QBI Deduction Permanent", ImpactDescription: "Self-employed individuals get permanent 20% qualified business income deduction on Schedule C business income, subject to income limitations.", PotentialSavings: "$40,000 per $200,000 of QBI", Year: 2025},
		{EntityType: "Sole Proprietor", ProvisionName: "Tip Income Deduction", ImpactDescription: "Self-employed service providers can deduct tips received. Applies to sole proprietors in service industries. Temporary provision 2025-2028.", PotentialSavings: "$5,000-$30,000 annually", Year: 2025},
		{EntityType: "Sole Proprietor", ProvisionName: "Section 179 Expansion", ImpactDescription: "Sole proprietors can deduct $2,500,000 in business equipment and property purchases immediately on Schedule C.", PotentialSavings: "$300,000+ in first-year savings", Year: 2025},
		{EntityType: "Individual", ProvisionName: "SALT Deduction Increase", ImpactDescription: "State and local tax deduction cap raised from $10,000 to $40,000 for single and joint filers (2025-2029), benefiting taxpayers in high-tax states.", PotentialSavings: "$7,000-$10,000 tax savings in high-tax states", Year: 2025},
		{EntityType: "Individual", ProvisionName: "Car Loan Interest Deduction", ImpactDescription: "Personal auto loan interest deductible for loans on US-assembled vehicles. Temporary provision applies 2025-2028 with domestic assembly requirements.", PotentialSavings: "$1,000-$3,000 annually", Year: 2025},
		{EntityType: "Individual", ProvisionName: "Enhanced Senior Deduction", ImpactDescription: "Taxpayers age 65 and older receive increased standard deduction with income-based phase-outs. Temporary provision 2025-2028.", PotentialSavings: "$2,000-$5,000 additional deduction", Year: 2025},
		{EntityType: "Individual", ProvisionName: "Standard Deduction Increase", ImpactDescription: "Standard deduction increased by $1,150 (single) to $2,300 (married filing jointly) for 2025, reducing taxable income for most taxpayers.", PotentialSavings: "$250-$500 tax savings", Year: 2025},
	}
	for _, r := range rows {
		r.CreatedAt = now
		if _, err := s.InsertEntityImpact(ctx, r); err != nil {
			return fmt.Errorf("seed entity impacts: %w", err)
		}
	}
	return nil
}
