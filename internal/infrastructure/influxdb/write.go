package influxdb

import (
	"context"
	"fmt"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WritePoints writes a batch of points to InfluxDB.
//
// This is the primary method for recording imported time series data.
// The write is synchronous: the whole batch is sent in one request and
// the call blocks until the server accepts or rejects it. A rejected
// batch is returned as an error so the caller can abort the run.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - points: Points to write (a nil or empty batch is a no-op)
//
// Returns:
//   - error: nil on success, ErrWriteFailed if the server rejects the batch
//
// Example:
//
//	pts := []*write.Point{
//	    write.NewPoint("consumption",
//	        map[string]string{"mpxn": "1234567890"},
//	        map[string]interface{}{"consumption": 0.25},
//	        time.Now()),
//	}
//	if err := client.WritePoints(ctx, pts...); err != nil {
//	    return err
//	}
func (c *Client) WritePoints(ctx context.Context, points ...*write.Point) error {
	if len(points) == 0 {
		return nil
	}

	if !c.IsConnected() {
		return ErrNotConnected
	}

	if err := c.writeAPI.WritePoint(ctx, points...); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return nil
}
