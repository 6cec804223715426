package worker

// LogMsgWorkerJobFailed is logged when a job returns an error.
const LogMsgWorkerJobFailed = "Worker job failed"
