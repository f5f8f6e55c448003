package cache

import (
	"strings"

	"github.com/bornholm/bbs/internal/core/model"
)

type CacheableUser struct {
	model.User
}

// CacheKeys implements [Cacheable].
func (u *CacheableUser) CacheKeys() []string {
	return []string{
		getUserProviderSubjectCacheKey(u.Provider(), u.Subject()),
		string(u.ID()),
	}
}

func NewCacheableUser(user model.User) *CacheableUser {
	return &CacheableUser{user}
}

var (
	_ model.User = &CacheableUser{}
	_ Cacheable  = &CacheableUser{}
)

func getUserProviderSubjectCacheKey(provider string, subject string) string {
	return strings.Join([]string{"subject", provider, subject}, "|")
}
