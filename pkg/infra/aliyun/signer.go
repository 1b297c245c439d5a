package aliyun

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // HMAC-SHA1 is mandated by signature version 1.0
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

const (
	SignatureMethod  = "HMAC-SHA1"
	SignatureVersion = "1.0"
	SignatureParam   = "Signature"

	// method and percent-encoded resource path of the string to sign
	stringToSignPrefix = "POST&%2F&"
)

// SignedCall is a parameter set ready to be sent; it is built once per
// remote call and dropped when the call returns.
type SignedCall struct {
	Params         map[string]string
	CanonicalQuery string
	Signature      string
}

// Query encodes the signed parameters, Signature included, as a URL query.
func (c SignedCall) Query() string {
	values := make(url.Values, len(c.Params))
	for k, v := range c.Params {
		values.Set(k, v)
	}
	return values.Encode()
}

type Signer struct {
	secret string
}

func NewSigner(accessKeySecret string) *Signer {
	return &Signer{secret: accessKeySecret}
}

// Sign computes the RPC signature over params and returns a copy of them with
// the Signature field added. A Signature already present in params is ignored.
func (s *Signer) Sign(params map[string]string) (SignedCall, error) {
	unsigned := make(map[string]string, len(params)+1)
	for k, v := range params {
		if k == SignatureParam {
			continue
		}
		unsigned[k] = v
	}

	canonical := CanonicalQuery(unsigned)
	signature, err := s.signature(StringToSign(canonical))
	if err != nil {
		return SignedCall{}, err
	}

	unsigned[SignatureParam] = signature
	return SignedCall{
		Params:         unsigned,
		CanonicalQuery: canonical,
		Signature:      signature,
	}, nil
}

func (s *Signer) signature(stringToSign string) (string, error) {
	mac := hmac.New(sha1.New, []byte(s.secret+"&"))
	if _, err := mac.Write([]byte(stringToSign)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigning, err)
	}
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// CanonicalQuery sorts params by key and joins the form-encoded pairs with '&'.
// Spaces are encoded as %20, never '+'.
func CanonicalQuery(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, url.QueryEscape(k)+"="+url.QueryEscape(params[k]))
	}
	return strings.ReplaceAll(strings.Join(pairs, "&"), "+", "%20")
}

func StringToSign(canonicalQuery string) string {
	return stringToSignPrefix + url.QueryEscape(canonicalQuery)
}
