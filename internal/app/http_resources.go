package app

import (
	"database/sql"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"taxguide/api/internal/store"
)

// requiredString is one entry in an ordered create-time check list for
// resources whose required fields are all trimmed strings.
type requiredString struct {
	key     string
	code    string
	message string
}

// requireStrings walks the checks in order and returns the trimmed values,
// or the first failure.
func requireStrings(payload body, checks []requiredString) (map[string]string, *DomainError) {
	values := make(map[string]string, len(checks))
	for _, check := range checks {
		value := payload.trimmedString(check.key)
		if value == "" {
			return nil, badRequest(check.code, check.message)
		}
		values[check.key] = value
	}
	return values, nil
}

func (b body) intField(key, code, message string) (int, *DomainError) {
	value, ok := asInt(b[key])
	if !ok {
		return 0, badRequest(code, message)
	}
	return value, nil
}

func (b body) nullableIntField(key, code, message string) (*int, *DomainError) {
	if b.missing(key) {
		return nil, nil
	}
	value, ok := asInt(b[key])
	if !ok {
		return nil, badRequest(code, message)
	}
	return &value, nil
}

func (b body) floatField(key, code, message string) (float64, *DomainError) {
	value, ok := asFloat(b[key])
	if !ok {
		return 0, badRequest(code, message)
	}
	return value, nil
}

func writeDomainError(w http.ResponseWriter, err *DomainError) {
	writeError(w, err.Status, err.Code, err.Message)
}

func writeMappedError(w http.ResponseWriter, err error) {
	status, code, message := mapError(err)
	writeError(w, status, code, message)
}

func yearFilter(r *http.Request) *int {
	raw := strings.TrimSpace(r.URL.Query().Get("year"))
	if raw == "" {
		return nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &year
}

// Tax brackets

func (s *HTTPServer) handleTaxBrackets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if hasIDParam(r) {
			id, ok := idParam(r)
			if !ok {
				writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
				return
			}
			record, err := s.service.GetTaxBracket(r.Context(), id)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					writeError(w, http.StatusNotFound, "NOT_FOUND", "Tax bracket not found")
					return
				}
				writeMappedError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, record)
			return
		}

		limit, offset := pagination(r)
		q := store.ListQuery{
			Limit:        limit,
			Offset:       offset,
			Year:         yearFilter(r),
			FilingStatus: strings.TrimSpace(r.URL.Query().Get("filingStatus")),
		}
		items, err := s.service.ListTaxBrackets(r.Context(), q)
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		payload, err := decodeBodyMap(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
		if payload.falsy("year") {
			writeError(w, http.StatusBadRequest, "MISSING_YEAR", "Year is required")
			return
		}
		if payload.falsy("filingStatus") {
			writeError(w, http.StatusBadRequest, "MISSING_FILING_STATUS", "Filing status is required")
			return
		}
		if payload.missing("bracketMin") {
			writeError(w, http.StatusBadRequest, "MISSING_BRACKET_MIN", "Bracket minimum is required")
			return
		}
		if payload.missing("taxRate") {
			writeError(w, http.StatusBadRequest, "MISSING_TAX_RATE", "Tax rate is required")
			return
		}

		year, derr := payload.intField("year", "INVALID_YEAR", "Year must be a valid integer")
		if derr != nil {
			writeDomainError(w, derr)
			return
		}
		bracketMin, derr := payload.intField("bracketMin", "INVALID_BRACKET_MIN", "Bracket minimum must be a valid integer")
		if derr != nil {
			writeDomainError(w, derr)
			return
		}
		bracketMax, derr := payload.nullableIntField("bracketMax", "INVALID_BRACKET_MAX", "Bracket maximum must be a valid integer")
		if derr != nil {
			writeDomainError(w, derr)
			return
		}
		taxRate, derr := payload.floatField("taxRate", "INVALID_TAX_RATE", "Tax rate must be a valid number")
		if derr != nil {
			writeDomainError(w, derr)
			return
		}

		created, err := s.service.CreateTaxBracket(r.Context(), store.TaxBracket{
			Year:         year,
			FilingStatus: payload.trimmedString("filingStatus"),
			BracketMin:   bracketMin,
			BracketMax:   bracketMax,
			TaxRate:      taxRate,
		})
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)

	case http.MethodPut:
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
			return
		}
		if _, err := s.service.GetTaxBracket(r.Context(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "NOT_FOUND", "Tax bracket not found")
				return
			}
			writeMappedError(w, err)
			return
		}
		payload, err := decodeBodyMap(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}

		var upd store.TaxBracketUpdate
		if payload.has("year") {
			year, derr := payload.intField("year", "INVALID_YEAR", "Year must be a valid integer")
			if derr != nil {
				writeDomainError(w, derr)
				return
			}
			upd.Year = store.OptInt{Set: true, Value: year}
		}
		if payload.has("filingStatus") {
			upd.FilingStatus = store.OptString{Set: true, Value: payload.trimmedString("filingStatus")}
		}
		if payload.has("bracketMin") {
			bracketMin, derr := payload.intField("bracketMin", "INVALID_BRACKET_MIN", "Bracket minimum must be a valid integer")
			if derr != nil {
				writeDomainError(w, derr)
				return
			}
			upd.BracketMin = store.OptInt{Set: true, Value: bracketMin}
		}
		if payload.has("bracketMax") {
			bracketMax, derr := payload.nullableIntField("bracketMax", "INVALID_BRACKET_MAX", "Bracket maximum must be a valid integer")
			if derr != nil {
				writeDomainError(w, derr)
				return
			}
			upd.BracketMax = store.OptNullInt{Set: true, Value: bracketMax}
		}
		if payload.has("taxRate") {
			taxRate, derr := payload.floatField("taxRate", "INVALID_TAX_RATE", "Tax rate must be a valid number")
			if derr != nil {
				writeDomainError(w, derr)
				return
			}
			upd.TaxRate = store.OptFloat{Set: true, Value: taxRate}
		}

		updated, err := s.service.UpdateTaxBracket(r.Context(), id, upd)
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
			return
		}
		deleted, err := s.service.DeleteTaxBracket(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "NOT_FOUND", "Tax bracket not found")
				return
			}
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message":       "Tax bracket deleted successfully",
			"deletedRecord": deleted,
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	}
}

// Standard deductions

func (s *HTTPServer) handleStandardDeductions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if hasIDParam(r) {
			id, ok := idParam(r)
			if !ok {
				writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
				return
			}
			record, err := s.service.GetStandardDeduction(r.Context(), id)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					writeError(w, http.StatusNotFound, "NOT_FOUND", "Standard deduction not found")
					return
				}
				writeMappedError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, record)
			return
		}

		limit, offset := pagination(r)
		q := store.ListQuery{
			Limit:        limit,
			Offset:       offset,
			FilingStatus: strings.TrimSpace(r.URL.Query().Get("filingStatus")),
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("year")); raw != "" {
			year, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_YEAR", "Year must be a valid integer")
				return
			}
			q.Year = &year
		}
		items, err := s.service.ListStandardDeductions(r.Context(), q)
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		payload, err := decodeBodyMap(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
		if payload.falsy("year") {
			writeError(w, http.StatusBadRequest, "MISSING_YEAR", "Year is required")
			return
		}
		if payload.falsy("filingStatus") {
			writeError(w, http.StatusBadRequest, "MISSING_FILING_STATUS", "Filing status is required")
			return
		}
		if payload.missing("amount") {
			writeError(w, http.StatusBadRequest, "MISSING_AMOUNT", "Amount is required")
			return
		}

		year, derr := payload.intField("year", "INVALID_YEAR", "Year must be a valid integer")
		if derr != nil {
			writeDomainError(w, derr)
			return
		}
		amount, derr := payload.intField("amount", "INVALID_AMOUNT", "Amount must be a valid integer")
		if derr != nil {
			writeDomainError(w, derr)
			return
		}

		created, err := s.service.CreateStandardDeduction(r.Context(), store.StandardDeduction{
			Year:         year,
			FilingStatus: payload.trimmedString("filingStatus"),
			Amount:       amount,
		})
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)

	case http.MethodPut:
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
			return
		}
		if _, err := s.service.GetStandardDeduction(r.Context(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "NOT_FOUND", "Standard deduction not found")
				return
			}
			writeMappedError(w, err)
			return
		}
		payload, err := decodeBodyMap(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}

		var upd store.StandardDeductionUpdate
		if payload.has("year") {
			year, derr := payload.intField("year", "INVALID_YEAR", "Year must be a valid integer")
			if derr != nil {
				writeDomainError(w, derr)
				return
			}
			upd.Year = store.OptInt{Set: true, Value: year}
		}
		if payload.has("filingStatus") {
			filingStatus := payload.trimmedString("filingStatus")
			if filingStatus == "" {
				writeError(w, http.StatusBadRequest, "INVALID_FILING_STATUS", "Filing status cannot be empty")
				return
			}
			upd.FilingStatus = store.OptString{Set: true, Value: filingStatus}
		}
		if payload.has("amount") {
			amount, derr := payload.intField("amount", "INVALID_AMOUNT", "Amount must be a valid integer")
			if derr != nil {
				writeDomainError(w, derr)
				return
			}
			upd.Amount = store.OptInt{Set: true, Value: amount}
		}

		updated, err := s.service.UpdateStandardDeduction(r.Context(), id, upd)
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
			return
		}
		deleted, err := s.service.DeleteStandardDeduction(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "NOT_FOUND", "Standard deduction not found")
				return
			}
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Standard deduction deleted successfully",
			"deleted": deleted,
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	}
}

// Retirement limits

func (s *HTTPServer) handleRetirementLimits(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if hasIDParam(r) {
			id, ok := idParam(r)
			if !ok {
				writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
				return
			}
			record, err := s.service.GetRetirementLimit(r.Context(), id)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					writeError(w, http.StatusNotFound, "NOT_FOUND", "Record not found")
					return
				}
				writeMappedError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, record)
			return
		}

		limit, offset := pagination(r)
		q := store.ListQuery{
			Limit:       limit,
			Offset:      offset,
			AccountType: strings.TrimSpace(r.URL.Query().Get("accountType")),
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("year")); raw != "" {
			year, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_YEAR", "Invalid year parameter")
				return
			}
			q.Year = &year
		}
		items, err := s.service.ListRetirementLimits(r.Context(), q)
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		payload, err := decodeBodyMap(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
		if payload.falsy("year") {
			writeError(w, http.StatusBadRequest, "MISSING_YEAR", "Year is required")
			return
		}
		if payload.falsy("accountType") {
			writeError(w, http.StatusBadRequest, "MISSING_ACCOUNT_TYPE", "Account type is required")
			return
		}
		if payload.missing("contributionLimit") {
			writeError(w, http.StatusBadRequest, "MISSING_CONTRIBUTION_LIMIT", "Contribution limit is required")
			return
		}

		year, derr := payload.intField("year", "INVALID_YEAR", "Year must be a valid integer")
		if derr != nil {
			writeDomainError(w, derr)
			return
		}
		contributionLimit, derr := payload.intField("contributionLimit", "INVALID_CONTRIBUTION_LIMIT", "Contribution limit must be a valid integer")
		if derr != nil {
			writeDomainError(w, derr)
			return
		}
		catchUpLimit, derr := payload.nullableIntField("catchUpLimit", "INVALID_CATCH_UP_LIMIT", "Catch-up limit must be a valid integer")
		if derr != nil {
			writeDomainError(w, derr)
			return
		}
		ageRequirement, derr := payload.nullableIntField("ageRequirement", "INVALID_AGE_REQUIREMENT", "Age requirement must be a valid integer")
		if derr != nil {
			writeDomainError(w, derr)
			return
		}

		created, err := s.service.CreateRetirementLimit(r.Context(), store.RetirementLimit{
			Year:              year,
			AccountType:       payload.trimmedString("accountType"),
			ContributionLimit: contributionLimit,
			CatchUpLimit:      catchUpLimit,
			AgeRequirement:    ageRequirement,
		})
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)

	case http.MethodPut:
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
			return
		}
		if _, err := s.service.GetRetirementLimit(r.Context(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "NOT_FOUND", "Record not found")
				return
			}
			writeMappedError(w, err)
			return
		}
		payload, err := decodeBodyMap(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}

		var upd store.RetirementLimitUpdate
		if payload.has("year") {
			year, derr := payload.intField("year", "INVALID_YEAR", "Year must be a valid integer")
			if derr != nil {
				writeDomainError(w, derr)
				return
			}
			upd.Year = store.OptInt{Set: true, Value: year}
		}
		if payload.has("accountType") {
			upd.AccountType = store.OptString{Set: true, Value: payload.trimmedString("accountType")}
		}
		if payload.has("contributionLimit") {
			contributionLimit, derr := payload.intField("contributionLimit", "INVALID_CONTRIBUTION_LIMIT", "Contribution limit must be a valid integer")
			if derr != nil {
				writeDomainError(w, derr)
				return
			}
			upd.ContributionLimit = store.OptInt{Set: true, Value: contributionLimit}
		}
		if payload.has("catchUpLimit") {
			catchUpLimit, derr := payload.nullableIntField("catchUpLimit", "INVALID_CATCH_UP_LIMIT", "Catch-up limit must be a valid integer")
			if derr != nil {
				writeDomainError(w, derr)
				return
			}
			upd.CatchUpLimit = store.OptNullInt{Set: true, Value: catchUpLimit}
		}
		if payload.has("ageRequirement") {
			ageRequirement, derr := payload.nullableIntField("ageRequirement", "INVALID_AGE_REQUIREMENT", "Age requirement must be a valid integer")
			if derr != nil {
				writeDomainError(w, derr)
				return
			}
			upd.AgeRequirement = store.OptNullInt{Set: true, Value: ageRequirement}
		}

		updated, err := s.service.UpdateRetirementLimit(r.Context(), id, upd)
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
			return
		}
		deleted, err := s.service.DeleteRetirementLimit(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "NOT_FOUND", "Record not found")
				return
			}
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message":       "Record deleted successfully",
			"deletedRecord": deleted,
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	}
}

// SALT deduction history. Its not-found body historically carried no code.

func (s *HTTPServer) handleSaltHistory(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if hasIDParam(r) {
			id, ok := idParam(r)
			if !ok {
				writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
				return
			}
			record, err := s.service.GetSaltDeduction(r.Context(), id)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					writeError(w, http.StatusNotFound, "", "Record not found")
					return
				}
				writeMappedError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, record)
			return
		}

		limit, offset := pagination(r)
		q := store.ListQuery{
			Limit:        limit,
			Offset:       offset,
			FilingStatus: strings.TrimSpace(r.URL.Query().Get("filingStatus")),
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("year")); raw != "" {
			year, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_YEAR", "Year must be a valid integer")
				return
			}
			q.Year = &year
		}
		items, err := s.service.ListSaltDeductions(r.Context(), q)
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		payload, err := decodeBodyMap(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
		if payload.falsy("year") {
			writeError(w, http.StatusBadRequest, "MISSING_YEAR", "Year is required")
			return
		}
		if payload.falsy("filingStatus") {
			writeError(w, http.StatusBadRequest, "MISSING_FILING_STATUS", "Filing status is required")
			return
		}
		if payload.missing("deductionCap") {
			writeError(w, http.StatusBadRequest, "MISSING_DEDUCTION_CAP", "Deduction cap is required")
			return
		}

		year, derr := payload.intField("year", "INVALID_YEAR", "Year must be a valid integer")
		if derr != nil {
			writeDomainError(w, derr)
			return
		}
		deductionCap, derr := payload.intField("deductionCap", "INVALID_DEDUCTION_CAP", "Deduction cap must be a valid integer")
		if derr != nil {
			writeDomainError(w, derr)
			return
		}
		phaseoutThreshold, derr := payload.nullableIntField("phaseoutThreshold", "INVALID_PHASEOUT_THRESHOLD", "Phaseout threshold must be a valid integer")
		if derr != nil {
			writeDomainError(w, derr)
			return
		}

		created, err := s.service.CreateSaltDeduction(r.Context(), store.SaltDeduction{
			Year:              year,
			FilingStatus:      payload.trimmedString("filingStatus"),
			DeductionCap:      deductionCap,
			PhaseoutThreshold: phaseoutThreshold,
		})
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)

	case http.MethodPut:
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
			return
		}
		if _, err := s.service.GetSaltDeduction(r.Context(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "", "Record not found")
				return
			}
			writeMappedError(w, err)
			return
		}
		payload, err := decodeBodyMap(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}

		var upd store.SaltDeductionUpdate
		if payload.has("year") {
			year, derr := payload.intField("year", "INVALID_YEAR", "Year must be a valid integer")
			if derr != nil {
				writeDomainError(w, derr)
				return
			}
			upd.Year = store.OptInt{Set: true, Value: year}
		}
		if payload.has("filingStatus") {
			upd.FilingStatus = store.OptString{Set: true, Value: payload.trimmedString("filingStatus")}
		}
		if payload.has("deductionCap") {
			deductionCap, derr := payload.intField("deductionCap", "INVALID_DEDUCTION_CAP", "Deduction cap must be a valid integer")
			if derr != nil {
				writeDomainError(w, derr)
				return
			}
			upd.DeductionCap = store.OptInt{Set: true, Value: deductionCap}
		}
		if payload.has("phaseoutThreshold") {
			phaseoutThreshold, derr := payload.nullableIntField("phaseoutThreshold", "INVALID_PHASEOUT_THRESHOLD", "Phaseout threshold must be a valid integer")
			if derr != nil {
				writeDomainError(w, derr)
				return
			}
			upd.PhaseoutThreshold = store.OptNullInt{Set: true, Value: phaseoutThreshold}
		}

		updated, err := s.service.UpdateSaltDeduction(r.Context(), id, upd)
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
			return
		}
		deleted, err := s.service.DeleteSaltDeduction(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "", "Record not found")
				return
			}
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Record deleted successfully",
			"record":  deleted,
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	}
}

// New provisions

func (s *HTTPServer) handleNewProvisions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if hasIDParam(r) {
			id, ok := idParam(r)
			if !ok {
				writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
				return
			}
			record, err := s.service.GetProvision(r.Context(), id)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					writeError(w, http.StatusNotFound, "NOT_FOUND", "Provision not found")
					return
				}
				writeMappedError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, record)
			return
		}

		limit, offset := pagination(r)
		q := store.ListQuery{
			Limit:  limit,
			Offset: offset,
			Search: strings.TrimSpace(r.URL.Query().Get("search")),
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("isTemporary")); raw != "" {
			isTemporary := raw == "true"
			q.IsTemporary = &isTemporary
		}
		items, err := s.service.ListProvisions(r.Context(), q)
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		payload, err := decodeBodyMap(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
		values, derr := requireStrings(payload, []requiredString{
			{"provisionName", "MISSING_PROVISION_NAME", "Provision name is required"},
			{"description", "MISSING_DESCRIPTION", "Description is required"},
			{"effectiveDate", "MISSING_EFFECTIVE_DATE", "Effective date is required"},
			{"publicLawCitation", "MISSING_PUBLIC_LAW_CITATION", "Public law citation is required"},
			{"ircSection", "MISSING_IRC_SECTION", "IRC section is required"},
		})
		if derr != nil {
			writeDomainError(w, derr)
			return
		}
		isTemporary, ok := asBool(payload["isTemporary"])
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_IS_TEMPORARY", "isTemporary must be a boolean")
			return
		}
		var expirationDate *string
		if !payload.missing("expirationDate") {
			if trimmed := payload.trimmedString("expirationDate"); trimmed != "" {
				expirationDate = &trimmed
			}
		}

		created, err := s.service.CreateProvision(r.Context(), store.Provision{
			ProvisionName:     values["provisionName"],
			Description:       values["description"],
			EffectiveDate:     values["effectiveDate"],
			ExpirationDate:    expirationDate,
			PublicLawCitation: values["publicLawCitation"],
			IRCSection:        values["ircSection"],
			IsTemporary:       isTemporary,
		})
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)

	case http.MethodPut:
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
			return
		}
		if _, err := s.service.GetProvision(r.Context(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "NOT_FOUND", "Provision not found")
				return
			}
			writeMappedError(w, err)
			return
		}
		payload, err := decodeBodyMap(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}

		var upd store.ProvisionUpdate
		stringFields := []struct {
			key     string
			code    string
			message string
			target  *store.OptString
		}{
			{"provisionName", "INVALID_PROVISION_NAME", "Provision name cannot be empty", &upd.ProvisionName},
			{"description", "INVALID_DESCRIPTION", "Description cannot be empty", &upd.Description},
			{"effectiveDate", "INVALID_EFFECTIVE_DATE", "Effective date cannot be empty", &upd.EffectiveDate},
			{"publicLawCitation", "INVALID_PUBLIC_LAW_CITATION", "Public law citation cannot be empty", &upd.PublicLawCitation},
			{"ircSection", "INVALID_IRC_SECTION", "IRC section cannot be empty", &upd.IRCSection},
		}
		for _, field := range stringFields {
			if !payload.has(field.key) {
				continue
			}
			value := payload.trimmedString(field.key)
			if value == "" {
				writeError(w, http.StatusBadRequest, field.code, field.message)
				return
			}
			*field.target = store.OptString{Set: true, Value: value}
		}
		if payload.has("expirationDate") {
			if payload.missing("expirationDate") {
				upd.ExpirationDate = store.OptNullString{Set: true, Value: nil}
			} else if trimmed := payload.trimmedString("expirationDate"); trimmed == "" {
				upd.ExpirationDate = store.OptNullString{Set: true, Value: nil}
			} else {
				upd.ExpirationDate = store.OptNullString{Set: true, Value: &trimmed}
			}
		}
		if payload.has("isTemporary") {
			isTemporary, ok := asBool(payload["isTemporary"])
			if !ok {
				writeError(w, http.StatusBadRequest, "INVALID_IS_TEMPORARY", "isTemporary must be a boolean")
				return
			}
			upd.IsTemporary = store.OptBool{Set: true, Value: isTemporary}
		}

		updated, err := s.service.UpdateProvision(r.Context(), id, upd)
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
			return
		}
		deleted, err := s.service.DeleteProvision(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "NOT_FOUND", "Provision not found")
				return
			}
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Provision deleted successfully",
			"deleted": deleted,
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	}
}

// Government references

func validGovURL(raw string) bool {
	parsed, err := url.Parse(raw)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}

func (s *HTTPServer) handleGovernmentReferences(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if hasIDParam(r) {
			id, ok := idParam(r)
			if !ok {
				writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
				return
			}
			record, err := s.service.GetGovernmentReference(r.Context(), id)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					writeError(w, http.StatusNotFound, "NOT_FOUND", "Government reference not found")
					return
				}
				writeMappedError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, record)
			return
		}

		limit, offset := pagination(r)
		q := store.ListQuery{
			Limit:    limit,
			Offset:   offset,
			Category: strings.TrimSpace(r.URL.Query().Get("category")),
			Search:   strings.TrimSpace(r.URL.Query().Get("search")),
		}
		items, err := s.service.ListGovernmentReferences(r.Context(), q)
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		payload, err := decodeBodyMap(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
		values, derr := requireStrings(payload, []requiredString{
			{"category", "MISSING_CATEGORY", "Category is required"},
			{"title", "MISSING_TITLE", "Title is required"},
			{"citationNumber", "MISSING_CITATION_NUMBER", "Citation number is required"},
			{"url", "MISSING_URL", "URL is required"},
			{"publishedDate", "MISSING_PUBLISHED_DATE", "Published date is required"},
			{"description", "MISSING_DESCRIPTION", "Description is required"},
		})
		if derr != nil {
			writeDomainError(w, derr)
			return
		}
		if !validGovURL(values["url"]) {
			writeError(w, http.StatusBadRequest, "INVALID_URL", "URL must be a valid URL")
			return
		}

		created, err := s.service.CreateGovernmentReference(r.Context(), store.GovernmentReference{
			Category:       values["category"],
			Title:          values["title"],
			CitationNumber: values["citationNumber"],
			URL:            values["url"],
			PublishedDate:  values["publishedDate"],
			Description:    values["description"],
		})
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)

	case http.MethodPut:
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
			return
		}
		if _, err := s.service.GetGovernmentReference(r.Context(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "NOT_FOUND", "Government reference not found")
				return
			}
			writeMappedError(w, err)
			return
		}
		payload, err := decodeBodyMap(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}

		var upd store.GovernmentReferenceUpdate
		provided := false
		stringFields := []struct {
			key     string
			code    string
			message string
			target  *store.OptString
		}{
			{"category", "INVALID_CATEGORY", "Category cannot be empty", &upd.Category},
			{"title", "INVALID_TITLE", "Title cannot be empty", &upd.Title},
			{"citationNumber", "INVALID_CITATION_NUMBER", "Citation number cannot be empty", &upd.CitationNumber},
			{"url", "INVALID_URL", "URL must be a valid URL", &upd.URL},
			{"publishedDate", "INVALID_PUBLISHED_DATE", "Published date cannot be empty", &upd.PublishedDate},
			{"description", "INVALID_DESCRIPTION", "Description cannot be empty", &upd.Description},
		}
		for _, field := range stringFields {
			if !payload.has(field.key) {
				continue
			}
			value := payload.trimmedString(field.key)
			if value == "" {
				writeError(w, http.StatusBadRequest, field.code, field.message)
				return
			}
			if field.key == "url" && !validGovURL(value) {
				writeError(w, http.StatusBadRequest, "INVALID_URL", "URL must be a valid URL")
				return
			}
			*field.target = store.OptString{Set: true, Value: value}
			provided = true
		}
		if !provided {
			writeError(w, http.StatusBadRequest, "NO_UPDATES", "No fields to update")
			return
		}

		updated, err := s.service.UpdateGovernmentReference(r.Context(), id, upd)
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
			return
		}
		deleted, err := s.service.DeleteGovernmentReference(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "NOT_FOUND", "Government reference not found")
				return
			}
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Government reference deleted successfully",
			"record":  deleted,
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	}
}

// Entity tax impacts

func (s *HTTPServer) handleEntityImpacts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if hasIDParam(r) {
			id, ok := idParam(r)
			if !ok {
				writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
				return
			}
			record, err := s.service.GetEntityImpact(r.Context(), id)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					writeError(w, http.StatusNotFound, "NOT_FOUND", "Record not found")
					return
				}
				writeMappedError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, record)
			return
		}

		limit, offset := pagination(r)
		q := store.ListQuery{
			Limit:      limit,
			Offset:     offset,
			Year:       yearFilter(r),
			EntityType: strings.TrimSpace(r.URL.Query().Get("entityType")),
			Search:     strings.TrimSpace(r.URL.Query().Get("search")),
		}
		items, err := s.service.ListEntityImpacts(r.Context(), q)
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		payload, err := decodeBodyMap(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}
		values, derr := requireStrings(payload, []requiredString{
			{"entityType", "MISSING_ENTITY_TYPE", "Entity type is required"},
			{"provisionName", "MISSING_PROVISION_NAME", "Provision name is required"},
			{"impactDescription", "MISSING_IMPACT_DESCRIPTION", "Impact description is required"},
			{"potentialSavings", "MISSING_POTENTIAL_SAVINGS", "Potential savings is required"},
		})
		if derr != nil {
			writeDomainError(w, derr)
			return
		}
		if payload.falsy("year") {
			writeError(w, http.StatusBadRequest, "MISSING_YEAR", "Year is required")
			return
		}
		year, derr := payload.intField("year", "INVALID_YEAR", "Year must be a valid integer")
		if derr != nil {
			writeDomainError(w, derr)
			return
		}

		created, err := s.service.CreateEntityImpact(r.Context(), store.EntityImpact{
			EntityType:        values["entityType"],
			ProvisionName:     values["provisionName"],
			ImpactDescription: values["impactDescription"],
			PotentialSavings:  values["potentialSavings"],
			Year:              year,
		})
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)

	case http.MethodPut:
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
			return
		}
		if _, err := s.service.GetEntityImpact(r.Context(), id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "NOT_FOUND", "Record not found")
				return
			}
			writeMappedError(w, err)
			return
		}
		payload, err := decodeBodyMap(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
			return
		}

		var upd store.EntityImpactUpdate
		stringFields := []struct {
			key     string
			code    string
			message string
			target  *store.OptString
		}{
			{"entityType", "EMPTY_ENTITY_TYPE", "Entity type cannot be empty", &upd.EntityType},
			{"provisionName", "EMPTY_PROVISION_NAME", "Provision name cannot be empty", &upd.ProvisionName},
			{"impactDescription", "EMPTY_IMPACT_DESCRIPTION", "Impact description cannot be empty", &upd.ImpactDescription},
			{"potentialSavings", "EMPTY_POTENTIAL_SAVINGS", "Potential savings cannot be empty", &upd.PotentialSavings},
		}
		for _, field := range stringFields {
			if !payload.has(field.key) {
				continue
			}
			value := payload.trimmedString(field.key)
			if value == "" {
				writeError(w, http.StatusBadRequest, field.code, field.message)
				return
			}
			*field.target = store.OptString{Set: true, Value: value}
		}
		if payload.has("year") {
			year, derr := payload.intField("year", "INVALID_YEAR", "Year must be a valid integer")
			if derr != nil {
				writeDomainError(w, derr)
				return
			}
			upd.Year = store.OptInt{Set: true, Value: year}
		}

		updated, err := s.service.UpdateEntityImpact(r.Context(), id, upd)
		if err != nil {
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		id, ok := idParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Valid ID is required")
			return
		}
		deleted, err := s.service.DeleteEntityImpact(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "NOT_FOUND", "Record not found")
				return
			}
			writeMappedError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message":       "Record deleted successfully",
			"deletedRecord": deleted,
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	}
}
