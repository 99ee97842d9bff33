/*
Package render turns a content.Selection into the bytes written to a response.

A Pipeline expands the selected file as an html/template,
wraps the result in a layout and replaces the URL tokens in the output:

	//// - the endpoint prefix followed by the language segment
	///  - the endpoint prefix

Layouts are found at layouts/<stem>.html, where stem names the variant (private, public or index).
A folder.conf file next to the selected file may point a stem at a different layout:

	layouts:
	  index: layouts/wide.html

Template actions are delimited by { and } unless WithDelims says otherwise.
With those defaults every brace in a file opens or closes an action,
so a page holding inline CSS or JavaScript fails to parse.
Such sites set the delims setting of the routing configuration, e.g. to {{ and }}.
*/
package render
