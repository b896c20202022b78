/*
Package builder turns a raw candidate submission into a recipe.Candidate.

Construction runs in passes, each of which records every problem it finds so
that a rejected submission explains all of its defects at once:

 1. Step parsing: every step record's index, technique and intent is parsed
    against the closed vocabularies in the technique package.

 2. Ordering: indices must be strictly increasing in submission order.
    Duplicates and regressions are both rejected.

 3. Ingredient parsing: names are normalised into match keys and quantities
    are parsed opportunistically.

 4. Linking: the parsed steps are chained into the candidate DAG, each step
    depending on the one before it.

Any problem in passes 1 to 3 fails the whole build with a
*MalformedSubmissionError; no partial candidate is returned.
*/
package builder
