package intake

// Fixed user-facing texts. These are part of the behavioral contract and are
// asserted on in tests, change with care.
const (
	GreetingMessage = "Hi! I'm MediTrack AI. Let's log your health symptoms. How are you feeling today?"

	clarificationMessage = "I see. Could you please tell me more? Mention specific symptoms like " +
		"'headache', 'fever', etc., so I can ask relevant follow-up questions."

	summaryHeader = "### Your Health Log Summary"
	adviceHeader  = "### General Wellness Advice"

	closingMessage = "Your session is complete. You can copy the summary above for your records. Stay well!"

	concludedMessage = "This session has concluded. To start a new health log, please start a new session."

	// Fallbacks for the two SummaryAdvisor failure modes: the call failed
	// outright, or it succeeded but produced nothing usable.
	providerErrorFallback = "An error occurred while trying to generate a response."
	emptyOutputFallback   = "The model could not generate a response for this query."
)
