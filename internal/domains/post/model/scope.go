package model

// ScopeKind selects which posts a listing includes.
type ScopeKind int

const (
	ScopeAll ScopeKind = iota
	ScopeGroup
	ScopeAuthor
)

// Scope is the filter criterion of a listing request.
type Scope struct {
	Kind      ScopeKind
	GroupSlug string // set for ScopeGroup
	Username  string // set for ScopeAuthor
}

func AllPosts() Scope {
	return Scope{Kind: ScopeAll}
}

func PostsInGroup(slug string) Scope {
	return Scope{Kind: ScopeGroup, GroupSlug: slug}
}

func PostsByAuthor(username string) Scope {
	return Scope{Kind: ScopeAuthor, Username: username}
}
