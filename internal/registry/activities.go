package registry

import "strconv"

type descriptor struct {
	letter string
	points int
	text   string
}

func activity(key, number, text string, descriptors ...descriptor) Question {
	answers := make([]Answer, len(descriptors))
	for i, d := range descriptors {
		answers[i] = Answer{
			Key:    key + number + d.letter,
			Letter: d.letter,
			Text:   d.text,
			Points: d.points,
		}
	}
	return Question{Key: key, Number: number, Text: number + ". " + text, Answers: answers}
}

const noneApplies = "None of the above applies."

// physicalActivities are activities 1 to 10 of the limited capability for work assessment
func physicalActivities() []Question {
	return []Question{
		activity("mobilisingUnaided", "1", "Mobilising unaided by another person with or without a walking stick, manual wheelchair or other aid if such aid is normally or could reasonably be worn or used.",
			descriptor{"a", 15, "Cannot, unaided by another person, either: (i) mobilise more than 50 metres on level ground without stopping in order to avoid significant discomfort or exhaustion; or (ii) repeatedly mobilise 50 metres within a reasonable timescale because of significant discomfort or exhaustion."},
			descriptor{"b", 9, "Cannot, unaided by another person, mount or descend two steps even with the support of a handrail."},
			descriptor{"c", 9, "Cannot, unaided by another person, either: (i) mobilise more than 100 metres on level ground without stopping in order to avoid significant discomfort or exhaustion; or (ii) repeatedly mobilise 100 metres within a reasonable timescale because of significant discomfort or exhaustion."},
			descriptor{"d", 6, "Cannot, unaided by another person, either: (i) mobilise more than 200 metres on level ground without stopping in order to avoid significant discomfort or exhaustion; or (ii) repeatedly mobilise 200 metres within a reasonable timescale because of significant discomfort or exhaustion."},
			descriptor{"e", 0, noneApplies},
		),
		activity("standingAndSitting", "2", "Standing and sitting.",
			descriptor{"a", 15, "Cannot move between one seated position and another seated position which are located next to one another without receiving physical assistance from another person."},
			descriptor{"b", 9, "Cannot, for the majority of the time, remain at a work station: (i) standing unassisted by another person (even if free to move around); (ii) sitting (even in an adjustable chair); or (iii) a combination of paragraphs (i) and (ii), for more than 30 minutes, before needing to move away in order to avoid significant discomfort or exhaustion."},
			descriptor{"c", 6, "Cannot, for the majority of the time, remain at a work station: (i) standing unassisted by another person (even if free to move around); (ii) sitting (even in an adjustable chair); or (iii) a combination of paragraphs (i) and (ii), for more than an hour before needing to move away in order to avoid significant discomfort or exhaustion."},
			descriptor{"d", 0, noneApplies},
		),
		activity("reaching", "3", "Reaching.",
			descriptor{"a", 15, "Cannot raise either arm as if to put something in the top pocket of a coat or jacket."},
			descriptor{"b", 9, "Cannot raise either arm to top of head as if to put on a hat."},
			descriptor{"c", 6, "Cannot raise either arm above head height as if to reach for something."},
			descriptor{"d", 0, noneApplies},
		),
		activity("pickingUpAndMoving", "4", "Picking up and moving or transferring by the use of the upper body and arms.",
			descriptor{"a", 15, "Cannot pick up and move a 0.5 litre carton full of liquid."},
			descriptor{"b", 9, "Cannot pick up and move a one litre carton full of liquid."},
			descriptor{"c", 6, "Cannot transfer a light but bulky object such as an empty cardboard box."},
			descriptor{"d", 0, noneApplies},
		),
		activity("manualDexterity", "5", "Manual dexterity.",
			descriptor{"a", 15, "Cannot press a button (such as a telephone keypad) with either hand or cannot turn the pages of a book with either hand."},
			descriptor{"b", 15, "Cannot pick up a £1 coin or equivalent with either hand."},
			descriptor{"c", 9, "Cannot use a pen or pencil to make a meaningful mark with either hand."},
			descriptor{"d", 9, "Cannot single-handedly use a suitable keyboard or mouse."},
			descriptor{"e", 0, noneApplies},
		),
		activity("makingSelfUnderstood", "6", "Making self understood through speaking, writing, typing, or other means which are normally or could reasonably be used, unaided by another person.",
			descriptor{"a", 15, "Cannot convey a simple message, such as the presence of a hazard."},
			descriptor{"b", 15, "Has significant difficulty conveying a simple message to strangers."},
			descriptor{"c", 6, "Has some difficulty conveying a simple message to strangers."},
			descriptor{"d", 0, noneApplies},
		),
		activity("communication", "7", "Understanding communication by both verbal means (such as hearing or lip reading) and non-verbal means (such as reading 16 point print or Braille) without the assistance of another person.",
			descriptor{"a", 15, "Cannot understand a simple message, such as the location of a fire escape, due to sensory impairment."},
			descriptor{"b", 15, "Has significant difficulty understanding a simple message from a stranger due to sensory impairment."},
			descriptor{"c", 6, "Has some difficulty understanding a simple message from a stranger due to sensory impairment."},
			descriptor{"d", 0, noneApplies},
		),
		activity("navigation", "8", "Navigation and maintaining safety using a guide dog or other aid if either or both are normally, or could reasonably be, used.",
			descriptor{"a", 15, "Unable to navigate around familiar surroundings, without being accompanied by another person, due to sensory impairment."},
			descriptor{"b", 15, "Cannot safely complete a potentially hazardous task such as crossing the road, without being accompanied by another person, due to sensory impairment."},
			descriptor{"c", 9, "Unable to navigate around unfamiliar surroundings, without being accompanied by another person, due to sensory impairment."},
			descriptor{"d", 0, noneApplies},
		),
		activity("lossOfControl", "9", "Absence or loss of control whilst conscious leading to extensive evacuation of the bowel and/or bladder, other than enuresis (bed-wetting), despite the wearing or use of any aids or adaptations which are normally or could reasonably be worn or used.",
			descriptor{"a", 15, "At least once a month experiences: (i) loss of control leading to extensive evacuation of the bowel and/or voiding of the bladder; or (ii) substantial leakage of the contents of a collecting device, sufficient to require cleaning and a change in clothing."},
			descriptor{"b", 6, "The majority of the time is at risk of loss of control leading to extensive evacuation of the bowel and/or voiding of the bladder, sufficient to require cleaning and a change in clothing, if not able to reach a toilet quickly."},
			descriptor{"c", 0, noneApplies},
		),
		activity("consciousness", "10", "Consciousness during waking moments.",
			descriptor{"a", 15, "At least once a week, has an involuntary episode of lost or altered consciousness resulting in significantly disrupted awareness or concentration."},
			descriptor{"b", 6, "At least once a month, has an involuntary episode of lost or altered consciousness resulting in significantly disrupted awareness or concentration."},
			descriptor{"c", 0, noneApplies},
		),
	}
}

// mentalActivities are activities 11 to 17 of the limited capability for work assessment
func mentalActivities() []Question {
	return []Question{
		activity("learningTasks", "11", "Learning tasks.",
			descriptor{"a", 15, "Cannot learn how to complete a simple task, such as setting an alarm clock."},
			descriptor{"b", 9, "Cannot learn anything beyond a simple task, such as setting an alarm clock."},
			descriptor{"c", 6, "Cannot learn anything beyond a moderately complex task, such as the steps involved in operating a washing machine to clean clothes."},
			descriptor{"d", 0, noneApplies},
		),
		activity("awarenessOfHazards", "12", "Awareness of everyday hazards (such as boiling water or sharp objects).",
			descriptor{"a", 15, "Reduced awareness of everyday hazards leads to a significant risk of: (i) injury to self or others; or (ii) damage to property or possessions, such that they require supervision for the majority of the time to maintain safety."},
			descriptor{"b", 9, "Reduced awareness of everyday hazards leads to a significant risk of: (i) injury to self or others; or (ii) damage to property or possessions, such that they frequently require supervision to maintain safety."},
			descriptor{"c", 6, "Reduced awareness of everyday hazards leads to a significant risk of: (i) injury to self or others; or (ii) damage to property or possessions, such that they occasionally require supervision to maintain safety."},
			descriptor{"d", 0, noneApplies},
		),
		activity("personalAction", "13", "Initiating and completing personal action (which means planning, organisation, problem solving, prioritising or switching tasks).",
			descriptor{"a", 15, "Cannot, due to impaired mental function, reliably initiate or complete at least 2 sequential personal actions."},
			descriptor{"b", 9, "Cannot, due to impaired mental function, reliably initiate or complete at least 2 personal actions for the majority of the time."},
			descriptor{"c", 6, "Frequently cannot, due to impaired mental function, reliably initiate or complete at least 2 personal actions."},
			descriptor{"d", 0, noneApplies},
		),
		activity("copingWithChange", "14", "Coping with change.",
			descriptor{"a", 15, "Cannot cope with any change to the extent that day to day life cannot be managed."},
			descriptor{"b", 9, "Cannot cope with minor planned change (such as a pre-arranged change to the routine time scheduled for a lunch break), to the extent that, overall, day to day life is made significantly more difficult."},
			descriptor{"c", 6, "Cannot cope with minor unplanned change (such as the timing of an appointment on the day it is due to occur), to the extent that, overall, day to day life is made significantly more difficult."},
			descriptor{"d", 0, noneApplies},
		),
		activity("gettingAbout", "15", "Getting about.",
			descriptor{"a", 15, "Cannot get to any place outside the claimant's home with which the claimant is familiar."},
			descriptor{"b", 9, "Is unable to get to a specified place with which the claimant is familiar, without being accompanied by another person."},
			descriptor{"c", 6, "Is unable to get to a specified place with which the claimant is unfamiliar without being accompanied by another person."},
			descriptor{"d", 0, noneApplies},
		),
		activity("socialEngagement", "16", "Coping with social engagement due to cognitive impairment or mental disorder.",
			descriptor{"a", 15, "Engagement in social contact is always precluded due to difficulty relating to others or significant distress experienced by the individual."},
			descriptor{"b", 9, "Engagement in social contact with someone unfamiliar to the claimant is always precluded due to difficulty relating to others or significant distress experienced by the individual."},
			descriptor{"c", 6, "Engagement in social contact with someone unfamiliar to the claimant is not possible for the majority of the time due to difficulty relating to others or significant distress experienced by the individual."},
			descriptor{"d", 0, noneApplies},
		),
		activity("appropriatenessOfBehaviour", "17", "Appropriateness of behaviour with other people, due to cognitive impairment or mental disorder.",
			descriptor{"a", 15, "Has, on a daily basis, uncontrollable episodes of aggressive or disinhibited behaviour that would be unreasonable in any workplace."},
			descriptor{"b", 15, "Frequently has uncontrollable episodes of aggressive or disinhibited behaviour that would be unreasonable in any workplace."},
			descriptor{"c", 9, "Occasionally has uncontrollable episodes of aggressive or disinhibited behaviour that would be unreasonable in any workplace."},
			descriptor{"d", 0, noneApplies},
		),
	}
}

type workRelatedActivity struct {
	name     string
	activity string
	text     string
}

var workRelatedActivities = []workRelatedActivity{
	{"MobilisingUnaided", "Mobilising unaided by another person with or without a walking stick, manual wheelchair or other aid if such aid is normally or could reasonably be worn or used.", "Cannot either: (i) mobilise more than 50 metres on level ground without stopping in order to avoid significant discomfort or exhaustion; or (ii) repeatedly mobilise 50 metres within a reasonable timescale because of significant discomfort or exhaustion."},
	{"TransferringOneSeatedToAnother", "Transferring from one seated position to another.", "Cannot move between one seated position and another seated position located next to one another without receiving physical assistance from another person."},
	{"Reaching", "Reaching.", "Cannot raise either arm as if to put something in the top pocket of a coat or jacket."},
	{"PickingUpAndMoving", "Picking up and moving or transferring by the use of the upper body and arms (excluding standing, sitting, bending or kneeling and all other activities specified in this Schedule).", "Cannot pick up and move a 0.5 litre carton full of liquid."},
	{"ManualDexterity", "Manual dexterity.", "Cannot either: (i) press a button (such as a telephone keypad); or (ii) turn the pages of a book, with either hand."},
	{"MakingSelfUnderstood", "Making self understood through speaking, writing, typing, or other means which are normally, or could reasonably be, used unaided by another person.", "Cannot convey a simple message, such as the presence of a hazard."},
	{"UnderstandingCommunication", "Understanding communication by both verbal means (such as hearing or lip reading) and non-verbal means (such as reading 16 point print or Braille) without the assistance of another person.", "Cannot understand a simple message due to sensory impairment, such as the location of a fire escape."},
	{"LossOfControl", "Absence or loss of control whilst conscious leading to extensive evacuation of the bowel and/or voiding of the bladder, other than enuresis (bed-wetting), despite the wearing or use of any aids or adaptations which are normally or could reasonably be worn or used.", "At least once a week experiences: (i) loss of control leading to extensive evacuation of the bowel and/or voiding of the bladder; or (ii) substantial leakage of the contents of a collecting device, sufficient to require the individual to clean themselves and change clothing."},
	{"LearningTasks", "Learning tasks.", "Cannot learn how to complete a simple task, such as setting an alarm clock, due to cognitive impairment or mental disorder."},
	{"AwarenessOfHazard", "Awareness of hazard.", "Reduced awareness of everyday hazards, due to cognitive impairment or mental disorder, leads to a significant risk of: (i) injury to self or others; or (ii) damage to property or possessions, such that they require supervision for the majority of the time to maintain safety."},
	{"PersonalAction", "Initiating and completing personal action (which means planning, organisation, problem solving, prioritising or switching tasks).", "Cannot, due to impaired mental function, reliably initiate or complete at least 2 sequential personal actions."},
	{"CopingWithChange", "Coping with change.", "Cannot cope with any change, due to cognitive impairment or mental disorder, to the extent that day to day life cannot be managed."},
	{"CopingWithSocialEngagement", "Coping with social engagement, due to cognitive impairment or mental disorder.", "Engagement in social contact is always precluded due to difficulty relating to others or significant distress experienced by the individual."},
	{"AppropriatenessOfBehaviour", "Appropriateness of behaviour with other people, due to cognitive impairment or mental disorder.", "Has, on a daily basis, uncontrollable episodes of aggressive or disinhibited behaviour that would be unreasonable in any workplace."},
	{"ConveyingFoodOrDrink", "Conveying food or drink to the mouth.", "Cannot convey food or drink to the claimant's own mouth without receiving physical assistance from someone else."},
	{"ChewingOrSwallowing", "Chewing or swallowing food or drink.", "Cannot chew or swallow food or drink."},
}

// highTierActivities are the limited capability for work-related activity
// selections, keyed with the schedule prefix ("schedule7MobilisingUnaided")
func highTierActivities(prefix string) []Question {
	out := make([]Question, len(workRelatedActivities))
	for i, a := range workRelatedActivities {
		number := strconv.Itoa(i + 1)
		out[i] = Question{
			Key:    prefix + a.name,
			Number: number,
			Text:   number + ". " + a.activity,
			Detail: a.text,
		}
	}
	return out
}
