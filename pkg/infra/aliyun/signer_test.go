package aliyun_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/NeuralTrust/ImageGuard/pkg/infra/aliyun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func fixtureParams() map[string]string {
	return map[string]string{
		"Action":            "ImageModeration",
		"Version":           "2022-03-02",
		"AccessKeyId":       "testid",
		"Format":            "JSON",
		"SignatureMethod":   "HMAC-SHA1",
		"Timestamp":         "2024-01-02T03:04:05Z",
		"SignatureVersion":  "1.0",
		"SignatureNonce":    "3f1c2d7e-0000-4000-8000-000000000001",
		"Service":           "baselineCheck",
		"ServiceParameters": `{"imageUrl":"https://cdn.example.com/a b+c.png"}`,
	}
}

func TestSigner_Sign_KnownAnswer(t *testing.T) {
	call, err := aliyun.NewSigner("testsecret").Sign(fixtureParams())
	require.NoError(t, err)

	assert.Equal(t,
		"AccessKeyId=testid&Action=ImageModeration&Format=JSON&Service=baselineCheck"+
			"&ServiceParameters=%7B%22imageUrl%22%3A%22https%3A%2F%2Fcdn.example.com%2Fa%20b%2Bc.png%22%7D"+
			"&SignatureMethod=HMAC-SHA1&SignatureNonce=3f1c2d7e-0000-4000-8000-000000000001"+
			"&SignatureVersion=1.0&Timestamp=2024-01-02T03%3A04%3A05Z&Version=2022-03-02",
		call.CanonicalQuery,
	)
	assert.Equal(t, "8gS+2lv+vrHRcJ7rwaaE1/pZ81U=", call.Signature)
	assert.Equal(t, call.Signature, call.Params[aliyun.SignatureParam])
}

func TestCanonicalQuery_SpaceAndPlus(t *testing.T) {
	canonical := aliyun.CanonicalQuery(map[string]string{
		"ServiceParameters": `{"imageUrl":"https://x.test/a+b c.png"}`,
	})

	assert.NotContains(t, canonical, "+")
	assert.Contains(t, canonical, "a%2Bb%20c.png")
}

func TestCanonicalQuery_SortedByKey(t *testing.T) {
	canonical := aliyun.CanonicalQuery(map[string]string{"b": "2", "a": "1", "C": "3"})

	assert.Equal(t, "C=3&a=1&b=2", canonical)
}

func TestStringToSign(t *testing.T) {
	sts := aliyun.StringToSign("A=1&B=a%20b")

	assert.Equal(t, "POST&%2F&A%3D1%26B%3Da%2520b", sts)
}

func TestSigner_Sign_IgnoresExistingSignature(t *testing.T) {
	signer := aliyun.NewSigner("testsecret")
	params := fixtureParams()
	params[aliyun.SignatureParam] = "stale"

	call, err := signer.Sign(params)
	require.NoError(t, err)

	assert.Equal(t, "8gS+2lv+vrHRcJ7rwaaE1/pZ81U=", call.Signature)
	assert.Equal(t, "stale", params[aliyun.SignatureParam], "input map must not be mutated")
}

func TestSignedCall_Query(t *testing.T) {
	call, err := aliyun.NewSigner("testsecret").Sign(fixtureParams())
	require.NoError(t, err)

	values, err := url.ParseQuery(call.Query())
	require.NoError(t, err)

	assert.Equal(t, call.Signature, values.Get("Signature"))
	assert.Equal(t, `{"imageUrl":"https://cdn.example.com/a b+c.png"}`, values.Get("ServiceParameters"))
}

func TestSigner_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		secret := rapid.String().Draw(t, "secret")
		imageURL := rapid.StringMatching(`https://[a-z]{1,8}\.test/[a-zA-Z0-9 +&=%/]{0,20}`).Draw(t, "image_url")
		nonceA := rapid.StringMatching(`[a-f0-9-]{8,36}`).Draw(t, "nonce_a")
		nonceB := rapid.StringMatching(`[a-f0-9-]{8,36}`).Draw(t, "nonce_b")

		params := fixtureParams()
		params["ServiceParameters"] = `{"imageUrl":"` + imageURL + `"}`
		signer := aliyun.NewSigner(secret)

		params["SignatureNonce"] = nonceA
		first, err := signer.Sign(params)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		second, err := signer.Sign(params)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if first.Signature != second.Signature {
			t.Fatalf("signature not deterministic: %q vs %q", first.Signature, second.Signature)
		}
		if strings.Contains(first.CanonicalQuery, "+") {
			t.Fatalf("canonical query contains '+': %s", first.CanonicalQuery)
		}

		params["SignatureNonce"] = nonceB
		third, err := signer.Sign(params)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if nonceA != nonceB && third.Signature == first.Signature {
			t.Fatalf("different nonces produced the same signature")
		}
	})
}
