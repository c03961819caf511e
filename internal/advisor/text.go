package advisor

// Canned response templates. These are user-facing markdown; channels
// decide how to render them.

const pathMenuText = `👋 **Welcome to Income Generation Guidance!**

I'm here to help you start making money as a student. I can guide you whether you want to:

🏢 **Start a Business** - Selling products, running operations
🛠️ **Offer Services** - Using your skills to help others

📊 **Or Not Sure?** - I can help you figure out the best path!

**What interests you more?**
1️⃣ Starting a business
2️⃣ Offering services
3️⃣ Not sure - help me decide

*(Just type 1, 2, 3, or tell me in your own words)*
`

const greetingText = `Hello! 👋

I'm your **Business & Income Generation Advisor**. I help students like you discover ways to make money through:

💼 Starting businesses
🛠️ Offering services
💡 Monetizing your skills

**Want to get started? Just tell me:**
- "I want to make money"
- "Help me start a business"
- "What services can I offer?"
- Or ask any income-related question!

How can I help you today? 😊
`

const businessPathText = `🏢 **Great! Let's explore business opportunities.**

Businesses typically involve buying/selling products or running operations. Before I recommend specific businesses, I need to understand your situation:

**1. How much capital (money) can you invest to start?**
   - ₦0 (no money available)
   - ₦5,000 - ₦20,000 (small amount)
   - ₦20,000 - ₦50,000 (moderate)
   - ₦50,000+ (good starting capital)

**2. What type of business interests you?**
   - Online (e-commerce, dropshipping)
   - Physical products (clothing, accessories, food)
   - Not sure

*Please share your answers, and I'll recommend suitable businesses!*
`

const servicePathText = `🛠️ **Excellent choice! Services need minimal capital.**

Service-based income means using your skills to help others. This is perfect for students because:
✅ Little to no startup cost
✅ Flexible schedule
✅ Can start immediately

**Let's discover what you can offer. Tell me:**

**1. What skills do you have?**
   Examples: Writing, design, coding, teaching, social media, video editing, etc.

**2. What do people often ask you for help with?**

**3. What subjects or activities do you excel at?**

*Share whatever comes to mind - don't worry if you think you have "no skills"! We'll figure it out together.* 😊
`

const undecidedIntroText = `🤔 **No problem! Let's figure this out together.**

I'll ask a few quick questions to understand you better:

`

const undecidedOutroText = `*Answer whatever feels relevant - even one or two answers help me point you in the right direction!*
`

const pathRepromptText = `I'm not quite sure what you'd prefer! 😅

Let me ask differently: **What sounds more interesting to you?**

🏢 **Business** - Example: Selling thrift clothes, phone accessories, snacks, dropshipping
🛠️ **Service** - Example: Graphic design, tutoring, social media management, writing

Or just tell me: **"I'm not sure, help me decide"** and I'll guide you through some questions!
`

const matchedFollowupText = `
**💡 These match your profile perfectly!**

**What would you like to do?**
• Type **1, 2, or 3** for detailed action plan
• Say **"show me custom ideas"** for AI-generated unique opportunities
• Ask **"tell me more about [service name]"** for details
`

const businessFollowupText = `
**Interested in any of these? Tell me which number, and I'll give you a complete startup guide!** 📋
`

const serviceFallbackText = `With your current capital, I'd recommend starting with **service-based income** first to:
1. Build capital
2. Learn business basics
3. Start earning immediately

Would you like me to show you service opportunities instead? 🛠️
`

const customHeaderText = `🎨 **AI-GENERATED CUSTOM OPPORTUNITIES FOR YOUR UNIQUE SKILLS:**

_These are personalized suggestions based on your specific abilities!_

═══════════════════════════════════════

`

const customFollowupText = `

═══════════════════════════════════════

**💡 What's Next?**

These are custom opportunities I generated just for you!

**Want more?**
• Say **"show me more ideas"** for different suggestions
• Say **"expand on #1"** (or 2, 3) for detailed action plan
• Say **"show database options"** to see proven service templates

**Ready to start?** Pick one and let's create your action plan! 🚀
`

const customFallbackText = `I had trouble generating custom opportunities right now.

Let me show you some versatile services that work for many skills:

**1. Personal Assistant Services** - Help busy people with tasks
**2. Campus Courier** - Deliver items around campus
**3. Skill Teaching** - Teach your unique skill to others

Which interests you? Or describe your skills differently and I'll try again!
`

const expandGuidanceText = `To create a detailed action plan for that AI-generated option, please **describe it more specifically** or choose from our proven database opportunities.

Say **"show database options"** to see structured opportunities with complete action plans!
`

const selectionClarifyText = `I'm not sure which opportunity you're interested in. Here's what you can do:

**From Database (Proven Plans):**
• Type the **number** (1, 2, or 3) from options shown earlier
• Type the **name** of the service (e.g., "graphic design")
• Say **"show me options again"**

**AI-Generated (Custom Ideas):**
• Say **"show me custom ideas"** for unique opportunities
• Say **"generate creative options"** for your specific skills

What would you like to do? 😊
`

const generalErrorText = `I encountered an error answering that. Please try rephrasing your question!`

const matchPromptTemplate = `Based on these skills/interests: "%s"

Identify the TOP 3 service opportunities from this list that best match:

AVAILABLE SERVICES:
%s
Respond ONLY with 3 numbers (e.g., "10, 11, 12") - the services that BEST match the skills mentioned.
If NO services match well, respond with "GENERATE_CUSTOM"
`

const customPromptTemplate = `A Nigerian student has these skills/abilities: "%s"
%s
Generate 3 SPECIFIC, PRACTICAL income opportunities they can start with minimal capital.

For EACH opportunity, provide:
1. Service/Business Name (creative, specific)
2. How it works (2-3 sentences)
3. Startup capital needed (in Naira)
4. Expected income (Month 1, Month 3, Month 6 in Naira)
5. First 3 action steps
6. Target customers
7. Where to find clients

Make opportunities:
- Realistic for Nigerian students
- Low barrier to entry
- Practical and actionable
- Creative but feasible

Format each opportunity clearly with headers.
`

const generalSystemTemplate = `You are a business advisor helping students start income-generating activities.

Student profile:
- Path: %s
- Capital: ₦%s
- Skills: %s

Provide practical, actionable advice. Be encouraging and realistic. Focus on opportunities suitable for Nigerian students.
`
