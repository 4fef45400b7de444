package course

var weeks = []WeekInfo{
	{Week: 1, Title: "Building Awareness", Description: "Start by understanding your social anxiety patterns and triggers", Theme: "awareness"},
	{Week: 2, Title: "Understanding Your Comfort Zone", Description: "Explore the boundaries of your comfort zone with gentle exercises", Theme: "comfort"},
	{Week: 3, Title: "Small Interactions", Description: "Practice brief, low-pressure social interactions", Theme: "interaction"},
	{Week: 4, Title: "Group Settings", Description: "Build confidence in group environments", Theme: "group"},
	{Week: 5, Title: "Deeper Connections", Description: "Form more meaningful relationships and conversations", Theme: "connection"},
	{Week: 6, Title: "Confidence & Growth", Description: "Embrace your social confidence and plan for continued growth", Theme: "confidence"},
}

var exercises = []Exercise{
	// Week 1: Building Awareness
	{Week: 1, Day: 1, Title: "Notice Your Breathing", Description: "Spend 5 minutes today observing your breathing patterns in social situations. Don't try to change anything, just notice when your breathing becomes shallow or rapid.", Category: "awareness"},
	{Week: 1, Day: 2, Title: "Body Scan Check-in", Description: "Before entering any social space, do a quick body scan. Notice where you hold tension and gently relax those areas.", Category: "awareness"},
	{Week: 1, Day: 3, Title: "Thought Observation", Description: "Write down 3 thoughts you have before a social interaction. Don't judge them, just observe and note the patterns.", Category: "awareness"},
	{Week: 1, Day: 4, Title: "Comfort Zone Mapping", Description: "Draw or list your current comfort zone. What social situations feel easy? Which ones feel challenging?", Category: "awareness"},
	{Week: 1, Day: 5, Title: "Anxiety Trigger Journal", Description: "Keep a small notebook and jot down what specific social triggers make you feel anxious throughout the day.", Category: "awareness"},
	{Week: 1, Day: 6, Title: "Self-Compassion Practice", Description: "When you notice self-critical thoughts about social interactions, practice speaking to yourself as you would a good friend.", Category: "awareness"},
	{Week: 1, Day: 7, Title: "Celebration Ritual", Description: "Create a small celebration ritual for completing your first week. This could be a favorite treat, activity, or moment of acknowledgment.", Category: "awareness"},

	// Week 2: Understanding Your Comfort Zone
	{Week: 2, Day: 1, Title: "Smile at Yourself", Description: "Practice smiling genuinely at yourself in the mirror for 30 seconds. Notice how it feels and affects your mood.", Category: "comfort"},
	{Week: 2, Day: 2, Title: "Eye Contact with Cashiers", Description: "Make brief, friendly eye contact with cashiers or service workers. Start with just a moment of connection.", Category: "comfort"},
	{Week: 2, Day: 3, Title: "Thank You Practice", Description: "Make it a point to say 'thank you' with genuine appreciation to at least 3 people today, maintaining eye contact.", Category: "comfort"},
	{Week: 2, Day: 4, Title: "Hold the Door", Description: "When approaching a door and someone is behind you, hold it open for them. A simple 'here you go' or just a smile works perfectly.", Category: "comfort"},
	{Week: 2, Day: 5, Title: "Weather Comment", Description: "Make one casual comment about the weather to someone (cashier, neighbor, coworker). Keep it simple and genuine.", Category: "comfort"},
	{Week: 2, Day: 6, Title: "Compliment Someone", Description: "Give one genuine compliment to someone today. It could be about their shirt, helpfulness, or anything authentic you notice.", Category: "comfort"},
	{Week: 2, Day: 7, Title: "Phone Call Practice", Description: "Make one phone call instead of sending a text. It could be to order food, ask about store hours, or call a family member.", Category: "comfort"},

	// Week 3: Small Interactions
	{Week: 3, Day: 1, Title: "Ask for Help", Description: "Ask someone for small help or directions, even if you already know the answer. Practice receiving assistance gracefully.", Category: "interaction"},
	{Week: 3, Day: 2, Title: "Introduce Yourself", Description: "Introduce yourself to one new person today - a neighbor, coworker, or someone in your regular environment.", Category: "interaction"},
	{Week: 3, Day: 3, Title: "Join a Short Conversation", Description: "Add one comment or question to an existing conversation. Listen for natural entry points.", Category: "interaction"},
	{Week: 3, Day: 4, Title: "Express an Opinion", Description: "Share a mild opinion about something neutral (weather, local event, TV show) in a conversation.", Category: "interaction"},
	{Week: 3, Day: 5, Title: "Ask Follow-up Questions", Description: "When someone shares something with you, ask one follow-up question to show interest and keep the conversation flowing.", Category: "interaction"},
	{Week: 3, Day: 6, Title: "Share Something Personal", Description: "Share one small, positive personal detail (hobby, weekend plan, or interest) in a conversation.", Category: "interaction"},
	{Week: 3, Day: 7, Title: "Initiate a Conversation", Description: "Start a brief conversation with someone new. A simple 'How's your day going?' can be a great opener.", Category: "interaction"},

	// Week 4: Group Settings
	{Week: 4, Day: 1, Title: "Attend a Small Group", Description: "Join a small group activity (work meeting, class, community event) and commit to staying for the full duration.", Category: "group"},
	{Week: 4, Day: 2, Title: "Speak Up in a Group", Description: "Contribute at least one comment or question in a group setting. Choose something low-stakes to share.", Category: "group"},
	{Week: 4, Day: 3, Title: "Agree with Someone", Description: "When someone in a group says something you agree with, voice your agreement: 'I think that's a great point' or 'I agree.'", Category: "group"},
	{Week: 4, Day: 4, Title: "Ask a Group Question", Description: "Ask one question to the group about the topic being discussed. This shows engagement and interest.", Category: "group"},
	{Week: 4, Day: 5, Title: "Include Someone Quiet", Description: "If you notice someone being quiet in a group, gently invite their input: 'What do you think about this, [name]?'", Category: "group"},
	{Week: 4, Day: 6, Title: "Share a Resource", Description: "Share something helpful with the group - a link, book recommendation, or useful information related to your discussion.", Category: "group"},
	{Week: 4, Day: 7, Title: "Suggest a Group Activity", Description: "Propose a small group activity or suggest continuing a conversation over coffee/lunch with interested members.", Category: "group"},

	// Week 5: Deeper Connections
	{Week: 5, Day: 1, Title: "Share a Challenge", Description: "Share a current challenge you're facing (appropriately) with someone you feel comfortable with and ask for their perspective.", Category: "connection"},
	{Week: 5, Day: 2, Title: "Express Vulnerability", Description: "Share something you're learning or working on improving about yourself. Vulnerability builds deeper connections.", Category: "connection"},
	{Week: 5, Day: 3, Title: "Ask About Someone's Interests", Description: "Ask someone about something they're passionate about and really listen to their answer. Show genuine curiosity.", Category: "connection"},
	{Week: 5, Day: 4, Title: "Offer Support", Description: "If someone mentions a challenge, offer specific support: 'I'd be happy to help with that' or 'Would you like to talk about it?'", Category: "connection"},
	{Week: 5, Day: 5, Title: "Share a Success", Description: "Share a recent win or something you're proud of with someone. Practice receiving positive feedback gracefully.", Category: "connection"},
	{Week: 5, Day: 6, Title: "Make Plans", Description: "Suggest specific plans with someone you've been connecting with. It could be coffee, a walk, or attending an event together.", Category: "connection"},
	{Week: 5, Day: 7, Title: "Express Appreciation", Description: "Tell someone specifically how they've helped or positively impacted you. Be detailed about what you appreciate.", Category: "connection"},

	// Week 6: Confidence & Growth
	{Week: 6, Day: 1, Title: "Lead a Conversation", Description: "Take the lead in directing a conversation toward a topic you're knowledgeable or passionate about.", Category: "confidence"},
	{Week: 6, Day: 2, Title: "Handle Disagreement", Description: "When you disagree with someone, practice expressing your different viewpoint respectfully and calmly.", Category: "confidence"},
	{Week: 6, Day: 3, Title: "Public Speaking Moment", Description: "Speak up in a larger group setting - make an announcement, ask a question in a meeting, or share during a presentation.", Category: "confidence"},
	{Week: 6, Day: 4, Title: "Network Intentionally", Description: "Attend a networking event, social gathering, or community meeting with the goal of meeting 2-3 new people.", Category: "confidence"},
	{Week: 6, Day: 5, Title: "Set a Boundary", Description: "Practice setting a kind but firm boundary in a social situation when needed. Use 'I' statements and be direct.", Category: "confidence"},
	{Week: 6, Day: 6, Title: "Celebrate Your Growth", Description: "Share your social anxiety journey and growth with someone you trust. Acknowledge how far you've come.", Category: "confidence"},
	{Week: 6, Day: 7, Title: "Plan Your Future", Description: "Create a plan for continuing your social growth beyond this program. Set 2-3 specific goals for the next month.", Category: "confidence"},
}
