package interfaces

//go:generate mockgen -source=$GOFILE -destination=mocks/metrics_recorder_interface_mock.go -package=mock_interfaces

// IMetricsRecorder receives the business counters use cases emit.
type IMetricsRecorder interface {
	RecordTrackingEvent(targetType, event string)
	RecordTrackingSkipped(reason string)
	RecordPaymentFallback()
}
