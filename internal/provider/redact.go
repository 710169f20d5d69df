package provider

import (
	"errors"
	"net/url"
)

// StripQuery drops the named query parameters from the URL carried by a
// *url.Error in err. Both clients authenticate with a token parameter and
// http.Client embeds the full request URL in its errors.
func StripQuery(err error, keys ...string) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	stripped := &url.Error{Op: ue.Op, Err: ue.Err}
	if u, perr := url.Parse(ue.URL); perr == nil {
		q := u.Query()
		for _, k := range keys {
			q.Del(k)
		}
		u.RawQuery = q.Encode()
		stripped.URL = u.String()
	}
	return stripped
}
