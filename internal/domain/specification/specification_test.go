package specification

import (
	"testing"

	"idstore/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestByUserID(t *testing.T) {
	spec := ByUserID[*entity.User[int]](5)

	assert.True(t, spec.IsSatisfiedBy(&entity.User[int]{ID: 5}))
	assert.False(t, spec.IsSatisfiedBy(&entity.User[int]{ID: 6}))
	assert.True(t, spec.Predicate()(&entity.User[int]{ID: 5}))

	criteria, complete := spec.Criteria()
	assert.True(t, complete)
	assert.Equal(t, []Criterion{{Field: FieldKey, Value: 5}}, criteria)
}

func TestByUserName_IsCaseSensitive(t *testing.T) {
	spec := ByUserName[*entity.User[int]]("alice")

	assert.True(t, spec.IsSatisfiedBy(&entity.User[int]{UserName: "alice"}))
	assert.False(t, spec.IsSatisfiedBy(&entity.User[int]{UserName: "Alice"}))
	assert.False(t, spec.IsSatisfiedBy(&entity.User[int]{UserName: "alice "}))
}

func TestByEmail(t *testing.T) {
	spec := ByEmail[entity.EmailHolder[int]]("a@example.com")

	assert.True(t, spec.IsSatisfiedBy(&entity.User[int]{EmailAddress: "a@example.com"}))
	assert.False(t, spec.IsSatisfiedBy(&entity.User[int]{EmailAddress: "b@example.com"}))
	assert.False(t, spec.IsSatisfiedBy(&entity.User[int]{}))
}

func TestByLoginProviderAndKey_RequiresBoth(t *testing.T) {
	spec := ByLoginProviderAndKey[int]("google", "g-1")

	tests := []struct {
		name  string
		login *entity.Login[int]
		want  bool
	}{
		{name: "both match", login: &entity.Login[int]{LoginProvider: "google", LoginKey: "g-1"}, want: true},
		{name: "provider only", login: &entity.Login[int]{LoginProvider: "google", LoginKey: "g-2"}},
		{name: "key only", login: &entity.Login[int]{LoginProvider: "github", LoginKey: "g-1"}},
		{name: "swapped", login: &entity.Login[int]{LoginProvider: "g-1", LoginKey: "google"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spec.IsSatisfiedBy(tt.login))
		})
	}

	criteria, complete := spec.Criteria()
	assert.True(t, complete)
	assert.ElementsMatch(t, []Criterion{
		{Field: FieldProvider, Value: "google"},
		{Field: FieldProviderKey, Value: "g-1"},
	}, criteria)
}

func TestCapabilitySpecificVariants(t *testing.T) {
	user := &entity.User[int]{ID: 7}

	assert.True(t, ByUserWithEmail(7).IsSatisfiedBy(user))
	assert.False(t, ByUserWithEmail(8).IsSatisfiedBy(user))
	assert.True(t, ByEmailConfirmationStatus(7).IsSatisfiedBy(user))
	assert.True(t, ByUserLogin(7).IsSatisfiedBy(&entity.Login[int]{UserID: 7}))
	assert.False(t, ByUserLogin(7).IsSatisfiedBy(&entity.Login[int]{UserID: 5}))
	assert.True(t, ByUserClaim(7).IsSatisfiedBy(&entity.Claim[int]{UserID: 7}))
}

func TestByClaimTypeAndValue(t *testing.T) {
	spec := ByClaimTypeAndValue[int]("role", "admin")

	assert.True(t, spec.IsSatisfiedBy(&entity.Claim[int]{ClaimType: "role", ClaimValue: "admin"}))
	assert.False(t, spec.IsSatisfiedBy(&entity.Claim[int]{ClaimType: "role", ClaimValue: "user"}))
	assert.False(t, spec.IsSatisfiedBy(&entity.Claim[int]{ClaimType: "group", ClaimValue: "admin"}))
}

func TestComposition(t *testing.T) {
	owned := ByUserClaim(1)
	admin := ByClaimTypeAndValue[int]("role", "admin")

	adminOfOne := &entity.Claim[int]{UserID: 1, ClaimType: "role", ClaimValue: "admin"}
	userOfOne := &entity.Claim[int]{UserID: 1, ClaimType: "role", ClaimValue: "user"}
	adminOfTwo := &entity.Claim[int]{UserID: 2, ClaimType: "role", ClaimValue: "admin"}

	t.Run("and", func(t *testing.T) {
		spec := And(owned, admin)
		assert.True(t, spec.IsSatisfiedBy(adminOfOne))
		assert.False(t, spec.IsSatisfiedBy(userOfOne))
		assert.False(t, spec.IsSatisfiedBy(adminOfTwo))

		criteria, complete := spec.Criteria()
		assert.True(t, complete)
		assert.Len(t, criteria, 3)
	})

	t.Run("or", func(t *testing.T) {
		spec := Or(owned, admin)
		assert.True(t, spec.IsSatisfiedBy(userOfOne))
		assert.True(t, spec.IsSatisfiedBy(adminOfTwo))
		assert.False(t, spec.IsSatisfiedBy(&entity.Claim[int]{UserID: 2}))

		_, complete := spec.Criteria()
		assert.False(t, complete)
	})

	t.Run("not", func(t *testing.T) {
		spec := Not(owned)
		assert.False(t, spec.IsSatisfiedBy(adminOfOne))
		assert.True(t, spec.IsSatisfiedBy(adminOfTwo))

		_, complete := spec.Criteria()
		assert.False(t, complete)
	})

	t.Run("and with an incomplete side", func(t *testing.T) {
		_, complete := And(owned, Not(admin)).Criteria()
		assert.False(t, complete)
	})
}

func TestNew_WithoutCriteriaIsIncomplete(t *testing.T) {
	spec := New(func(u *entity.User[int]) bool { return u.ID > 10 })

	criteria, complete := spec.Criteria()
	assert.Empty(t, criteria)
	assert.False(t, complete)
}

func TestCriteria_ReturnsACopy(t *testing.T) {
	spec := ByUserID[*entity.User[int]](1)

	criteria, _ := spec.Criteria()
	criteria[0].Value = 2

	again, _ := spec.Criteria()
	assert.Equal(t, 1, again[0].Value)
}

func TestFilter_PreservesOrder(t *testing.T) {
	logins := []entity.LoginRecord[int]{
		&entity.Login[int]{UserID: 5, LoginProvider: "a", LoginKey: "b"},
		&entity.Login[int]{UserID: 7, LoginProvider: "c", LoginKey: "d"},
		&entity.Login[int]{UserID: 5, LoginProvider: "c", LoginKey: "d"},
		&entity.Login[int]{UserID: 6, LoginProvider: "c", LoginKey: "d"},
	}

	got := Filter(ByUserLogin(5), logins)
	assert.Equal(t, []entity.LoginRecord[int]{logins[0], logins[2]}, got)
}
