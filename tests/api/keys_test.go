package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/classicrypt/internal/core/entities/storedkey"
	"github.com/sergeii/classicrypt/internal/core/entities/variant"
	"github.com/sergeii/classicrypt/internal/testutils"
	"github.com/sergeii/classicrypt/internal/testutils/factories/keyfactory"
)

type keySchema struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Variant   string    `json:"variant"`
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"created_at"`
}

func TestAPI_ListKeys_OK(t *testing.T) {
	ctx := context.TODO()
	var result []keySchema

	ts, repos, cancel := testutils.PrepareTestServerWithRepos(t)
	defer cancel()

	first := keyfactory.Create(
		ctx, repos.Keys,
		keyfactory.WithName("first"),
		keyfactory.WithGronsfeldKey("БКД"),
		keyfactory.WithCreatedAt(time.Date(2024, time.March, 8, 10, 0, 0, 0, time.UTC)),
	)
	keyfactory.Create(
		ctx, repos.Keys,
		keyfactory.WithName("second"),
		keyfactory.WithPermutationKey("314"),
		keyfactory.WithCreatedAt(time.Date(2024, time.March, 8, 11, 0, 0, 0, time.UTC)),
	)

	resp := testutils.DoTestRequest(
		ts, http.MethodGet, "/api/keys", nil,
		testutils.MustBindJSON(&result),
	)

	assert.Equal(t, 200, resp.StatusCode)
	require.Len(t, result, 2)
	assert.Equal(t, first.ID, result[0].ID)
	assert.Equal(t, "first", result[0].Name)
	assert.Equal(t, "gronsfeld", result[0].Variant)
	assert.Equal(t, "БКД", result[0].Key)
	assert.True(t, first.CreatedAt.Equal(result[0].CreatedAt))
	assert.Equal(t, "second", result[1].Name)
	assert.Equal(t, "permutation", result[1].Variant)
	assert.Equal(t, "314", result[1].Key)
}

func TestAPI_ListKeys_Empty(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	resp := testutils.DoTestRequest(ts, http.MethodGet, "/api/keys", nil)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "[]", resp.Body)
}

func TestAPI_AddKey(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantName    string
		wantVariant variant.Variant
		wantKey     string
	}{
		{
			"positive case - gronsfeld key",
			`{"name": "secret", "variant": "gronsfeld", "key": "БКД"}`,
			201,
			"secret",
			variant.Gronsfeld,
			"БКД",
		},
		{
			"positive case - name is turned into a slug",
			`{"name": "My Key", "variant": "permutation", "key": "42"}`,
			201,
			"my-key",
			variant.Permutation,
			"42",
		},
		{
			"name is already taken",
			`{"name": "taken", "variant": "gronsfeld", "key": "БКД"}`,
			409,
			"",
			variant.Unknown,
			"",
		},
		{
			"name is too long",
			`{"name": "` + strings.Repeat("a", storedkey.MaxNameLength+1) + `", "variant": "gronsfeld", "key": "БКД"}`,
			400,
			"",
			variant.Unknown,
			"",
		},
		{
			"empty key",
			`{"name": "secret", "variant": "gronsfeld", "key": ""}`,
			422,
			"",
			variant.Unknown,
			"",
		},
		{
			"name has no usable characters",
			`{"name": "!!!", "variant": "gronsfeld", "key": "БКД"}`,
			400,
			"",
			variant.Unknown,
			"",
		},
		{
			"invalid gronsfeld key",
			`{"name": "latin", "variant": "gronsfeld", "key": "KEY"}`,
			422,
			"",
			variant.Unknown,
			"",
		},
		{
			"invalid permutation key",
			`{"name": "zeros", "variant": "permutation", "key": "00"}`,
			422,
			"",
			variant.Unknown,
			"",
		},
		{
			"unknown variant",
			`{"name": "secret", "variant": "vigenere", "key": "БКД"}`,
			400,
			"",
			variant.Unknown,
			"",
		},
		{
			"missing key",
			`{"name": "secret", "variant": "gronsfeld"}`,
			422,
			"",
			variant.Unknown,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.TODO()
			var result keySchema

			ts, repos, cancel := testutils.PrepareTestServerWithRepos(t)
			defer cancel()

			keyfactory.Create(ctx, repos.Keys, keyfactory.WithName("taken"))

			resp := testutils.DoTestRequest(
				ts, http.MethodPost, "/api/keys", strings.NewReader(tt.body),
				testutils.WithHeader("Content-Type", "application/json"),
				testutils.MustBindJSON(&result),
			)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
			count, err := repos.Keys.Count(ctx)
			require.NoError(t, err)

			if tt.wantStatus != 201 {
				assert.Equal(t, 1, count)
				return
			}

			assert.Equal(t, 2, count)
			assert.NotEmpty(t, result.ID)
			assert.Equal(t, tt.wantName, result.Name)
			assert.Equal(t, tt.wantVariant.String(), result.Variant)
			assert.Equal(t, tt.wantKey, result.Key)

			stored, err := repos.Keys.Get(ctx, tt.wantName)
			require.NoError(t, err)
			assert.Equal(t, result.ID, stored.ID)
			assert.Equal(t, tt.wantVariant, stored.Variant)
			assert.Equal(t, tt.wantKey, stored.Key)
		})
	}
}

func TestAPI_ViewKey(t *testing.T) {
	tests := []struct {
		name       string
		keyName    string
		wantStatus int
	}{
		{
			"positive case",
			"secret",
			200,
		},
		{
			"unknown key",
			"unknown",
			404,
		},
		{
			"name is not a slug",
			"Secret",
			404,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.TODO()
			var result keySchema

			ts, repos, cancel := testutils.PrepareTestServerWithRepos(t)
			defer cancel()

			stored := keyfactory.Create(
				ctx, repos.Keys,
				keyfactory.WithName("secret"),
				keyfactory.WithPermutationKey("271828"),
			)

			resp := testutils.DoTestRequest(
				ts, http.MethodGet, "/api/keys/"+tt.keyName, nil,
				testutils.MustBindJSON(&result),
			)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus == 200 {
				assert.Equal(t, stored.ID, result.ID)
				assert.Equal(t, "secret", result.Name)
				assert.Equal(t, "permutation", result.Variant)
				assert.Equal(t, "271828", result.Key)
			}
		})
	}
}

func TestAPI_RemoveKey(t *testing.T) {
	tests := []struct {
		name       string
		keyName    string
		wantStatus int
		wantCount  int
	}{
		{
			"positive case",
			"secret",
			204,
			1,
		},
		{
			"unknown key",
			"unknown",
			404,
			2,
		},
		{
			"name is not a slug",
			"sec ret",
			404,
			2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.TODO()

			ts, repos, cancel := testutils.PrepareTestServerWithRepos(t)
			defer cancel()

			keyfactory.Create(ctx, repos.Keys, keyfactory.WithName("secret"))
			keyfactory.Create(ctx, repos.Keys, keyfactory.WithName("other"))

			resp := testutils.DoTestRequest(
				ts, http.MethodDelete, "/api/keys/"+strings.ReplaceAll(tt.keyName, " ", "%20"), nil,
			)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus == 204 {
				assert.Empty(t, resp.Body)
			}

			count, err := repos.Keys.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestAPI_AddKey_LongestNameIsUsable(t *testing.T) {
	var created keySchema
	var viewed keySchema
	var errResult errorSchema
	var transformed transformResultSchema
	name := strings.Repeat("a", storedkey.MaxNameLength)

	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	resp := testutils.DoTestRequest(
		ts, http.MethodPost, "/api/keys",
		strings.NewReader(`{"name": "`+name+`", "variant": "gronsfeld", "key": "БКД"}`),
		testutils.MustBindJSON(&created),
	)
	require.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, name, created.Name)

	resp = testutils.DoTestRequest(
		ts, http.MethodGet, "/api/keys/"+name, nil,
		testutils.MustBindJSON(&viewed),
	)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, created.ID, viewed.ID)

	resp = testutils.DoTestRequest(
		ts, http.MethodPost, "/api/encrypt",
		strings.NewReader(`{"key_name": "`+name+`", "text": "БГЕЖ"}`),
		testutils.MustBindJSON(&transformed),
	)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "ВНИЗ", transformed.Text)

	resp = testutils.DoTestRequest(ts, http.MethodDelete, "/api/keys/"+name, nil)
	assert.Equal(t, 204, resp.StatusCode)

	// one character more is refused up front, so nothing unreachable is ever stored
	resp = testutils.DoTestRequest(
		ts, http.MethodPost, "/api/keys",
		strings.NewReader(`{"name": "`+name+`a", "variant": "gronsfeld", "key": "БКД"}`),
		testutils.MustBindJSON(&errResult),
	)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "key name is invalid", errResult.Error)

	resp = testutils.DoTestRequest(ts, http.MethodGet, "/api/keys", nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "[]", resp.Body)
}

func TestAPI_AddKey_EmptyKeyKind(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty key", `{"name": "secret", "variant": "gronsfeld", "key": ""}`},
		{"key is omitted", `{"name": "secret", "variant": "permutation"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result errorSchema

			ts, cancel := testutils.PrepareTestServer(t)
			defer cancel()

			resp := testutils.DoTestRequest(
				ts, http.MethodPost, "/api/keys", strings.NewReader(tt.body),
				testutils.MustBindJSON(&result),
			)

			assert.Equal(t, 422, resp.StatusCode)
			assert.Equal(t, "empty_key", result.Kind)
			assert.Equal(t, "key cannot be empty", result.Error)
		})
	}
}
