package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"jobdesk/internal/common"
	"jobdesk/internal/domain/account"
	"jobdesk/internal/storage"
)

// Register creates an account and signs it in. The email must not collide
// with a registered account (case-insensitive); it is stored lower-cased.
func (s *Store) Register(ctx context.Context, name, email, password string, role account.Role) (*account.Account, error) {
	fields := map[string]string{}
	if strings.TrimSpace(name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(email) == "" {
		fields["email"] = "email is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if _, ok := account.ParseRole(string(role)); !ok {
		fields["role"] = "role must be candidate, employer, or admin"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid account", fields)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := strings.ToLower(strings.TrimSpace(email))
	for _, existing := range s.accounts {
		if strings.EqualFold(existing.Email, normalized) {
			return nil, common.NewError(common.CodeConflict, "an account with this email already exists", nil)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	created := account.Account{
		ID:           common.NewID(),
		Email:        normalized,
		Role:         role,
		Name:         name,
		PasswordHash: string(hash),
	}

	s.accounts = append(s.accounts, created)
	session := created.WithoutCredential()
	s.session = &session
	if err := s.persistAccounts(ctx); err != nil {
		return nil, err
	}
	if err := s.persistSession(ctx); err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("account registered id=%s role=%s", created.ID, created.Role))
	out := created.WithoutCredential()
	return &out, nil
}

// Authenticate signs an account in. The configured admin override pair is
// checked first and always succeeds, yielding a synthetic admin session that
// has no record in the accounts collection.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*account.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.adminEmail != "" && strings.EqualFold(email, s.adminEmail) && password == s.adminPassword {
		admin := account.Account{
			ID:    "admin",
			Email: email,
			Role:  account.RoleAdmin,
			Name:  "Administrator",
		}
		s.session = &admin
		if err := s.persistSession(ctx); err != nil {
			return nil, err
		}
		s.logInfo("admin override login")
		out := admin
		return &out, nil
	}

	for _, candidate := range s.accounts {
		if !strings.EqualFold(candidate.Email, email) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(candidate.PasswordHash), []byte(password)) != nil {
			break
		}
		session := candidate.WithoutCredential()
		s.session = &session
		if err := s.persistSession(ctx); err != nil {
			return nil, err
		}
		s.logInfo(fmt.Sprintf("login id=%s role=%s", session.ID, session.Role))
		out := session
		return &out, nil
	}
	return nil, common.NewError(common.CodeUnauthorized, "invalid email or password", nil)
}

// Logout clears the session. There is nothing to invalidate beyond the
// stored snapshot.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return s.persistSession(ctx)
}

// Session returns a copy of the signed-in account, or nil when logged out.
func (s *Store) Session() *account.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	out := *s.session
	return &out
}

// UpdateAccount merges the patch into the session account and its record in
// the accounts collection, and discards any in-progress profile draft.
func (s *Store) UpdateAccount(ctx context.Context, patch account.Patch) (*account.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, common.NewError(common.CodeUnauthorized, "no active session", nil)
	}

	patch.Apply(s.session)
	for i := range s.accounts {
		if s.accounts[i].ID == s.session.ID {
			patch.Apply(&s.accounts[i])
			break
		}
	}
	if err := s.persistAccounts(ctx); err != nil {
		return nil, err
	}
	if err := s.persistSession(ctx); err != nil {
		return nil, err
	}
	if err := s.snaps.Delete(ctx, draftKeyPrefix+s.session.ID); err != nil {
		s.logError(fmt.Sprintf("failed to drop profile draft id=%s: %v", s.session.ID, err))
	}
	out := *s.session
	return &out, nil
}

// SaveProfileDraft stores an in-progress profile edit under the session
// account's draft key. The draft survives restarts until saved or discarded.
func (s *Store) SaveProfileDraft(ctx context.Context, patch account.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return common.NewError(common.CodeUnauthorized, "no active session", nil)
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to encode profile draft", err)
	}
	if err := s.snaps.Save(ctx, draftKeyPrefix+s.session.ID, raw); err != nil {
		return common.NewError(common.CodeInternal, "failed to save profile draft", err)
	}
	return nil
}

// ProfileDraft returns the stored draft for the session account, or nil when
// none exists.
func (s *Store) ProfileDraft(ctx context.Context) (*account.Patch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, common.NewError(common.CodeUnauthorized, "no active session", nil)
	}
	raw, err := s.snaps.Load(ctx, draftKeyPrefix+s.session.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, common.NewError(common.CodeInternal, "failed to load profile draft", err)
	}
	var patch account.Patch
	if err := json.Unmarshal(raw, &patch); err != nil {
		return nil, common.NewError(common.CodeInternal, "corrupt profile draft", err)
	}
	return &patch, nil
}

// DiscardProfileDraft deletes the session account's draft key.
func (s *Store) DiscardProfileDraft(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return common.NewError(common.CodeUnauthorized, "no active session", nil)
	}
	if err := s.snaps.Delete(ctx, draftKeyPrefix+s.session.ID); err != nil {
		return common.NewError(common.CodeInternal, "failed to discard profile draft", err)
	}
	return nil
}

// Accounts returns a copy of the registered accounts with credentials
// stripped.
func (s *Store) Accounts() []account.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]account.Account, len(s.accounts))
	for i, a := range s.accounts {
		out[i] = a.WithoutCredential()
	}
	return out
}
