package collection

import (
	"fmt"
	"strings"
	"sync"
)

type regionError struct {
	region string
	msg    string
}

// RegionErrors accumulates replication failures across concurrently running
// workers, keyed by target region, for diagnostic logging.
type RegionErrors struct {
	sync.Mutex
	errs []regionError
}

func (e *RegionErrors) Add(region string, err error) {
	e.Lock()
	defer e.Unlock()

	e.errs = append(e.errs, regionError{region: region, msg: err.Error()})
}

func (e *RegionErrors) Len() int {
	e.Lock()
	defer e.Unlock()

	return len(e.errs)
}

func (e *RegionErrors) Error() error {
	e.Lock()
	defer e.Unlock()

	if len(e.errs) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(e.errs))
	for _, re := range e.errs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", re.region, re.msg))
	}

	return fmt.Errorf("encountered errors in %d region(s): \n %s", len(msgs), strings.Join(msgs, "\n "))
}
