package mainboilerplate

import (
	log "github.com/sirupsen/logrus"
)

// Must logs |err| with |msg| at Fatal level and exits if |err| is non-nil.
// |extra| is a sequence of alternating field names and values.
func Must(err error, msg string, extra ...interface{}) {
	if err == nil {
		return
	}
	log.WithFields(mustFields(err, extra...)).Fatal(msg)
}

func mustFields(err error, extra ...interface{}) log.Fields {
	var f = log.Fields{"err": err}
	for i := 0; i+1 < len(extra); i += 2 {
		f[extra[i].(string)] = extra[i+1]
	}
	return f
}
