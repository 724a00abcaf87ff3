package amplify

// Export unexported functions for testing
var (
	NewWithAPIForTest  = newWithAPI
	DeriveStageForTest = deriveStage
)
