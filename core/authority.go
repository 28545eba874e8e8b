package core

// AuthenticatedIdentity is the request-scoped identity attached by the
// authentication middleware. It lives only in the request's locals and is
// never shared across requests or persisted.
type AuthenticatedIdentity struct {
	Subject     string
	Authorities []string
}

// HasAuthority reports whether the identity carries the given authority
func (id *AuthenticatedIdentity) HasAuthority(authority string) bool {
	for _, a := range id.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

// AuthoritiesFor derives the authority set granted by a role. Keeping this
// outside Account keeps the persistence record free of security logic.
func AuthoritiesFor(role Role) []string {
	switch role {
	case RoleAdmin:
		return []string{string(RoleAdmin), string(RoleUser)}
	case RoleUser:
		return []string{string(RoleUser)}
	default:
		return nil
	}
}
