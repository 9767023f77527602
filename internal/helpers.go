package internal

import (
	"fmt"
	"time"
)

func AssertNoError(err error, because string) {
	if err != nil {
		panic(fmt.Errorf("error unexpected because %s: %w", because, err))
	}
}

// Now is replaceable so that tests can pin backup timestamps.
var Now = func() time.Time {
	return time.Now()
}
