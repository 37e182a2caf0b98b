package alert

// Responder is the handle returned by Present. Setters chain; the first
// error is kept and reported by Err.
type Responder struct {
	alert *Alert
	err   error
}

func (r *Responder) keep(err error) *Responder {
	if r.err == nil && err != nil {
		r.err = err
	}
	return r
}

func (r *Responder) SetTitle(title string) *Responder {
	return r.keep(r.alert.SetTitle(title))
}

func (r *Responder) SetSubtitle(subtitle string) *Responder {
	return r.keep(r.alert.SetSubtitle(subtitle))
}

func (r *Responder) SetDismissCallback(fn func(DismissReason)) *Responder {
	return r.keep(r.alert.SetDismissCallback(fn))
}

// Close dismisses the alert with ReasonClose. While the entrance animation
// runs the request is queued.
func (r *Responder) Close() error {
	return r.alert.requestDismiss(ReasonClose)
}

// Err returns the first error from a chained setter.
func (r *Responder) Err() error { return r.err }

func (r *Responder) Alert() *Alert { return r.alert }
